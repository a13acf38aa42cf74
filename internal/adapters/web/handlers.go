package web

import (
	"context"
	"errors"
	"time"

	"tidewriter/internal/config"
	"tidewriter/internal/domain"
	"tidewriter/internal/feed"
	"tidewriter/internal/render"
	"tidewriter/internal/usecases"
	"tidewriter/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// fetchTimeout bounds every content API round trip made on behalf of a
// page request.
const fetchTimeout = 10 * time.Second

// NewsRefresher triggers a news re-fetch on the content API.
type NewsRefresher interface {
	RefreshNews(ctx context.Context) (int, error)
}

// Handlers contains the HTTP handlers for the web application.
type Handlers struct {
	getChapter  *usecases.GetChapterUseCase
	listArchive *usecases.ListArchiveUseCase
	refresher   NewsRefresher
	limiter     *RateLimiter
	site        config.Site
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	getChapter *usecases.GetChapterUseCase,
	listArchive *usecases.ListArchiveUseCase,
	refresher NewsRefresher,
	limiter *RateLimiter,
	site config.Site,
) *Handlers {
	return &Handlers{
		getChapter:  getChapter,
		listArchive: listArchive,
		refresher:   refresher,
		limiter:     limiter,
		site:        site,
	}
}

// NavLink is one navigation tab, resolved against the current path.
type NavLink struct {
	Label  string
	Path   string
	Active bool
}

// viewData decorates page data with the site identity and navigation.
func (h *Handlers) viewData(c *fiber.Ctx, data fiber.Map) fiber.Map {
	nav := make([]NavLink, 0, len(h.site.Nav))
	for _, item := range h.site.Nav {
		nav = append(nav, NavLink{
			Label:  item.Label,
			Path:   item.Path,
			Active: render.IsActiveRoute(c.Path(), item.Path),
		})
	}

	data["Site"] = h.site
	data["Nav"] = nav
	return data
}

// Home renders the latest chapter with full metadata.
func (h *Handlers) Home(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), fetchTimeout)
	defer cancel()

	rec, err := h.getChapter.Execute(ctx, "")
	if errors.Is(err, domain.ErrChapterNotFound) {
		// No chapter published yet; the home template has an empty state.
		return c.Render("home", h.viewData(c, fiber.Map{"Chapter": nil}))
	}
	if err != nil {
		log.GlobalErrorCtx(ctx, "fetch latest chapter failed", "error", err)
		return h.renderError(c, err)
	}

	presentation, err := render.BuildPresentation(rec, true)
	if err != nil {
		log.GlobalErrorCtx(ctx, "render latest chapter failed", "chapter_date", rec.ChapterDate, "error", err)
		return h.renderError(c, err)
	}

	return c.Render("home", h.viewData(c, fiber.Map{"Chapter": presentation}))
}

// ViewChapter renders the chapter for a date. The ?meta=0 query switches
// to the title+body-only mode.
func (h *Handlers) ViewChapter(c *fiber.Ctx) error {
	isoDate, err := ParseChapterDate(c.Params("date"))
	if err != nil {
		log.GlobalWarnCtx(c.UserContext(), "invalid chapter date param", "param", c.Params("date"))
		return h.renderError(c, err)
	}

	showMeta := c.Query("meta") != "0"

	ctx, cancel := context.WithTimeout(c.UserContext(), fetchTimeout)
	defer cancel()

	rec, err := h.getChapter.Execute(ctx, isoDate)
	if err != nil {
		log.GlobalErrorCtx(ctx, "fetch chapter failed", "chapter_date", isoDate, "error", err)
		return h.renderError(c, err)
	}

	presentation, err := render.BuildPresentation(rec, showMeta)
	if err != nil {
		log.GlobalErrorCtx(ctx, "render chapter failed", "chapter_date", isoDate, "error", err)
		return h.renderError(c, err)
	}

	return c.Render("chapter", h.viewData(c, fiber.Map{
		"Chapter":  presentation,
		"IsoDate":  isoDate,
		"ShowMeta": showMeta,
	}))
}

// ArchiveEntryView is one archive listing row, display-ready.
type ArchiveEntryView struct {
	ChapterDate string
	Title       string
	Snippet     string
	Season      string
	DateLine    string
}

// Archive renders one page of the chapter archive.
func (h *Handlers) Archive(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	ctx, cancel := context.WithTimeout(c.UserContext(), fetchTimeout)
	defer cancel()

	archive, err := h.listArchive.Execute(ctx, page, usecases.DefaultPageSize)
	if err != nil {
		log.GlobalErrorCtx(ctx, "fetch archive failed", "page", page, "error", err)
		return h.renderError(c, err)
	}

	entries := make([]ArchiveEntryView, 0, len(archive.Chapters))
	for _, entry := range archive.Chapters {
		anchored, err := render.AnchorDate(entry.ChapterDate)
		if err != nil {
			// One malformed record must not take down the listing.
			log.GlobalWarnCtx(ctx, "skipping archive entry with bad date", "chapter_date", entry.ChapterDate)
			continue
		}
		entries = append(entries, ArchiveEntryView{
			ChapterDate: entry.ChapterDate,
			Title:       entry.Title,
			Snippet:     entry.Snippet,
			Season:      entry.Season,
			DateLine:    anchored.Format("Monday, January 2, 2006"),
		})
	}

	return c.Render("archive", h.viewData(c, fiber.Map{
		"Entries":  entries,
		"Page":     archive.Page,
		"HasMore":  archive.HasMore,
		"PrevPage": archive.Page - 1,
		"NextPage": archive.Page + 1,
	}))
}

// About renders the static about/disclaimer page.
func (h *Handlers) About(c *fiber.Ctx) error {
	return c.Render("about", h.viewData(c, fiber.Map{}))
}

// Feed serves the RSS feed of recent chapters.
func (h *Handlers) Feed(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), fetchTimeout)
	defer cancel()

	archive, err := h.listArchive.Execute(ctx, 1, usecases.DefaultPageSize)
	if err != nil {
		log.GlobalErrorCtx(ctx, "fetch archive for feed failed", "error", err)
		return fiber.NewError(fiber.StatusBadGateway, "feed unavailable")
	}

	body, err := feed.Build(h.site, archive.Chapters, time.Now())
	if err != nil {
		log.GlobalErrorCtx(ctx, "build feed failed", "error", err)
		return fiber.NewError(fiber.StatusInternalServerError, "feed unavailable")
	}

	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.Send(body)
}

// RefreshNews asks the backend to re-fetch local news. Rate limited per
// IP; authentication is the backend's job via the forwarded API key.
func (h *Handlers) RefreshNews(c *fiber.Ctx) error {
	ip := c.IP()
	if !h.limiter.CanRefresh(ip) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": h.friendlyError(domain.ErrRateLimited),
		})
	}
	h.limiter.RecordRefresh(ip)

	ctx, cancel := context.WithTimeout(c.UserContext(), 30*time.Second)
	defer cancel()

	count, err := h.refresher.RefreshNews(ctx)
	if err != nil {
		log.GlobalErrorCtx(ctx, "refresh news failed", "error", err)
		status := fiber.StatusBadGateway
		if errors.Is(err, domain.ErrRateLimited) {
			status = fiber.StatusTooManyRequests
		}
		return c.Status(status).JSON(fiber.Map{"error": h.friendlyError(err)})
	}

	return c.JSON(fiber.Map{"updated_count": count})
}

// renderError renders a full-page error scoped to the failed chapter.
func (h *Handlers) renderError(c *fiber.Ctx, err error) error {
	c.Status(errorStatus(err))
	return c.Render("error", h.viewData(c, fiber.Map{"Message": h.friendlyError(err)}))
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrChapterNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrMalformedDate):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusBadGateway
	}
}

// friendlyError returns a neutral, non-blaming error message.
func (h *Handlers) friendlyError(err error) string {
	switch {
	case errors.Is(err, domain.ErrChapterNotFound):
		return "There's no chapter for that day. The town's story may not have reached it yet."
	case errors.Is(err, domain.ErrMalformedDate):
		return "That doesn't look like a chapter date. Try a link from the archive."
	case errors.Is(err, domain.ErrRateLimited):
		return "Too many requests. Please wait a moment and try again."
	default:
		return "The story can't be reached right now. Please try again in a moment."
	}
}
