package usecases

import (
	"context"

	"tidewriter/internal/domain"
)

// Archive paging bounds, matching the content API's own limits.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ArchiveSource defines the interface for fetching archive pages.
type ArchiveSource interface {
	Archive(ctx context.Context, page, pageSize int) (*domain.ArchivePage, error)
}

// ListArchiveUseCase retrieves one page of the chapter archive.
type ListArchiveUseCase struct {
	source ArchiveSource
}

// NewListArchiveUseCase creates a new ListArchiveUseCase.
func NewListArchiveUseCase(source ArchiveSource) *ListArchiveUseCase {
	return &ListArchiveUseCase{source: source}
}

// Execute fetches an archive page, clamping the paging parameters into
// the API's accepted range rather than failing on bad input.
func (uc *ListArchiveUseCase) Execute(ctx context.Context, page, pageSize int) (*domain.ArchivePage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return uc.source.Archive(ctx, page, pageSize)
}
