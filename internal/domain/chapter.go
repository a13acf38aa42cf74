// Package domain contains the core business entities and rules.
package domain

import "time"

// ChapterRecord is one daily story chapter as delivered by the content API.
// Records are read-only once constructed; the renderer never mutates them.
type ChapterRecord struct {
	ID          int64          `json:"id"`
	ChapterDate string         `json:"chapter_date"` // ISO 8601 date-only, e.g. "2024-06-15"
	Title       string         `json:"title"`
	Body        string         `json:"body"` // paragraphs separated by blank lines
	Season      string         `json:"season"`
	DayOfWeek   string         `json:"day_of_week"` // precomputed label, e.g. "Tuesday"
	MonthName   string         `json:"month_name"`  // precomputed label, e.g. "June"
	Weather     string         `json:"weather_summary,omitempty"`
	TideState   string         `json:"tide_state,omitempty"`
	NewsItems   []NewsItemBrief `json:"news_items"`
	CreatedAt   time.Time      `json:"created_at"`
}

// NewsItemBrief is a single external headline referenced as source
// material for a chapter. Item order is presentation order.
type NewsItemBrief struct {
	ID         int64  `json:"id"`
	Headline   string `json:"headline"`
	Summary    string `json:"summary"`
	ArticleURL string `json:"article_url"`
}

// ArchiveEntry is the condensed chapter listing returned by the
// content API's archive endpoint.
type ArchiveEntry struct {
	ID          int64  `json:"id"`
	ChapterDate string `json:"chapter_date"`
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	Season      string `json:"season"`
}

// ArchivePage is one page of the chapter archive.
type ArchivePage struct {
	Chapters []ArchiveEntry `json:"chapters"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	HasMore  bool           `json:"has_more"`
}
