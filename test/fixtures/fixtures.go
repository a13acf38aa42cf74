// Package fixtures provides canned chapter records and API payloads for tests.
package fixtures

import (
	"time"

	"tidewriter/internal/domain"
)

// FullChapter returns a chapter record with every field populated:
// three body paragraphs, weather, tide, and two news items (one with an
// over-length summary).
func FullChapter() *domain.ChapterRecord {
	return &domain.ChapterRecord{
		ID:          42,
		ChapterDate: "2024-06-15",
		Title:       "The Morning the Marsh Went Quiet",
		Body: "The fog sat low over the marsh, thick as wool, and nobody on Water Street could see the far bank.\n\n" +
			"Down at the landing, Eleanor counted the skiffs twice and came up one short both times.\n\n" +
			"By noon the fog had burned off, and the missing skiff was back on its mooring as if it had never left.",
		Season:    "summer",
		DayOfWeek: "Saturday",
		MonthName: "June",
		Weather:   "Partly cloudy, high near 74, light onshore breeze",
		TideState: "High tide at 11:42 AM",
		NewsItems: []domain.NewsItemBrief{
			{
				ID:         101,
				Headline:   "Shellfish beds reopen after spring closure",
				Summary:    "The town's clam flats reopened to recreational digging this week after water quality tests came back clean.",
				ArticleURL: "https://example.com/news/shellfish-beds-reopen",
			},
			{
				ID:       102,
				Headline: "Farmers market adds Saturday evening hours",
				Summary: "Organizers announced the downtown farmers market will stay open until 8 PM on Saturdays through the end of " +
					"the season, citing strong turnout from commuters and a run of warm evenings that kept vendors busy well past the usual close.",
				ArticleURL: "https://example.com/news/farmers-market-hours",
			},
		},
		CreatedAt: time.Date(2024, 6, 15, 9, 5, 0, 0, time.UTC),
	}
}

// MinimalChapter returns a chapter with only required fields set.
func MinimalChapter() *domain.ChapterRecord {
	return &domain.ChapterRecord{
		ID:          7,
		ChapterDate: "2024-01-02",
		Title:       "A Cold Start",
		Body:        "Frost on every window in town.",
		Season:      "winter",
		DayOfWeek:   "Tuesday",
		MonthName:   "January",
	}
}

// ChapterJSON is a content API chapter response matching FullChapter.
const ChapterJSON = `{
  "id": 42,
  "chapter_date": "2024-06-15",
  "title": "The Morning the Marsh Went Quiet",
  "body": "The fog sat low over the marsh.\n\nEleanor counted the skiffs twice.",
  "season": "summer",
  "day_of_week": "Saturday",
  "month_name": "June",
  "weather_summary": "Partly cloudy, high near 74, light onshore breeze",
  "tide_state": "High tide at 11:42 AM",
  "news_items": [
    {
      "id": 101,
      "headline": "Shellfish beds reopen after spring closure",
      "summary": "The town's clam flats reopened to recreational digging this week.",
      "article_url": "https://example.com/news/shellfish-beds-reopen"
    }
  ],
  "created_at": "2024-06-15T09:05:00Z"
}`

// ArchiveJSON is a one-page archive response with two entries.
const ArchiveJSON = `{
  "chapters": [
    {
      "id": 42,
      "chapter_date": "2024-06-15",
      "title": "The Morning the Marsh Went Quiet",
      "snippet": "The fog sat low over the marsh...",
      "season": "summer"
    },
    {
      "id": 41,
      "chapter_date": "2024-06-14",
      "title": "What the Dredge Brought Up",
      "snippet": "Nobody expected the dredge to surface anything older than...",
      "season": "summer"
    }
  ],
  "total": 2,
  "page": 1,
  "page_size": 20,
  "has_more": false
}`
