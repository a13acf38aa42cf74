package usecases

import (
	"context"

	"tidewriter/internal/domain"
	"tidewriter/pkg/log"
)

// ChapterSource defines the interface for fetching chapters from the
// content API.
type ChapterSource interface {
	Latest(ctx context.Context) (*domain.ChapterRecord, error)
	ByDate(ctx context.Context, isoDate string) (*domain.ChapterRecord, error)
}

// ChapterCache defines the interface for caching chapters. An empty
// date addresses the latest-chapter slot.
type ChapterCache interface {
	Get(isoDate string) (*domain.ChapterRecord, bool)
	Set(isoDate string, chapter *domain.ChapterRecord)
}

// GetChapterUseCase retrieves chapters with a cache-first strategy.
type GetChapterUseCase struct {
	cache  ChapterCache
	source ChapterSource
}

// NewGetChapterUseCase creates a new GetChapterUseCase.
func NewGetChapterUseCase(cache ChapterCache, source ChapterSource) *GetChapterUseCase {
	return &GetChapterUseCase{
		cache:  cache,
		source: source,
	}
}

// Execute retrieves the chapter for an ISO date, or the latest chapter
// when the date is empty, checking the cache before the content API.
func (uc *GetChapterUseCase) Execute(ctx context.Context, isoDate string) (*domain.ChapterRecord, error) {
	if chapter, found := uc.cache.Get(isoDate); found {
		log.GlobalDebugCtx(ctx, "cache hit", "chapter_date", isoDate)
		return chapter, nil
	}

	log.GlobalDebugCtx(ctx, "cache miss, fetching", "chapter_date", isoDate)

	chapter, err := uc.fetch(ctx, isoDate)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(isoDate, chapter)
	if isoDate == "" {
		// The latest chapter is also addressable by its own date.
		uc.cache.Set(chapter.ChapterDate, chapter)
	}

	return chapter, nil
}

func (uc *GetChapterUseCase) fetch(ctx context.Context, isoDate string) (*domain.ChapterRecord, error) {
	if isoDate == "" {
		return uc.source.Latest(ctx)
	}
	return uc.source.ByDate(ctx, isoDate)
}
