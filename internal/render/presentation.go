package render

import "tidewriter/internal/domain"

// NoNewsNotice is the fixed sentence shown when a chapter referenced no
// local news. Absence of news is explained, never rendered as blank space.
const NoNewsNotice = "No local news stories were available when this chapter was written."

// NewsState enumerates the two news display variants.
type NewsState string

const (
	// NewsListed means the chapter referenced at least one news item.
	NewsListed NewsState = "listed"
	// NewsAbsent means the chapter referenced none; the fixed notice is
	// shown instead of an empty list.
	NewsAbsent NewsState = "absent"
)

// Presentation is the structured, display-ready form of one chapter.
type Presentation struct {
	Title      string
	DateLine   string
	Paragraphs []string

	// Meta is nil when the caller asked for title+body only. In that
	// mode no metadata work is performed, not merely hidden.
	Meta *Metadata
}

// Metadata is the optional footer block: weather, tide, season, and the
// news items that shaped the chapter.
type Metadata struct {
	Weather string // empty when the record carried no weather summary
	Tide    string // empty when the record carried no tide state
	Season  string // always present

	News NewsSection
}

// NewsSection holds one of the two exhaustive news variants.
type NewsSection struct {
	State  NewsState
	Items  []NewsDisplay // populated only when State == NewsListed
	Notice string        // populated only when State == NewsAbsent
}

// Listed reports whether the section carries news items. Convenience
// for templates.
func (s NewsSection) Listed() bool {
	return s.State == NewsListed
}

// NewsDisplay is one referenced headline, display-ready.
type NewsDisplay struct {
	Headline   string // full text, unmodified
	Summary    string // truncated per TruncateSummary
	ArticleURL string
}

// BuildPresentation transforms a chapter record into its presentation.
// A malformed chapter date fails this chapter only; all other degraded
// inputs (missing optional fields, empty news, empty body) are designed
// display states. Item order is preserved as delivered.
func BuildPresentation(rec *domain.ChapterRecord, showMeta bool) (*Presentation, error) {
	dateLine, err := FormatChapterDate(rec.ChapterDate, rec.DayOfWeek, rec.MonthName)
	if err != nil {
		return nil, err
	}

	p := &Presentation{
		Title:      rec.Title,
		DateLine:   dateLine,
		Paragraphs: Paragraphs(rec.Body),
	}

	if !showMeta {
		return p, nil
	}

	p.Meta = &Metadata{
		Weather: rec.Weather,
		Tide:    rec.TideState,
		Season:  rec.Season,
		News:    buildNewsSection(rec.NewsItems),
	}
	return p, nil
}

func buildNewsSection(items []domain.NewsItemBrief) NewsSection {
	if len(items) == 0 {
		return NewsSection{State: NewsAbsent, Notice: NoNewsNotice}
	}

	displays := make([]NewsDisplay, 0, len(items))
	for _, item := range items {
		displays = append(displays, NewsDisplay{
			Headline:   item.Headline,
			Summary:    TruncateSummary(item.Summary),
			ArticleURL: item.ArticleURL,
		})
	}
	return NewsSection{State: NewsListed, Items: displays}
}
