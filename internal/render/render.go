// Package render transforms a chapter record into its presentation
// structure. Everything in here is a pure function: no I/O, no shared
// state, inputs are never mutated, so concurrent renders need no locking.
package render

import (
	"fmt"
	"strings"
	"time"

	"tidewriter/internal/domain"
)

// SummaryLimit is the maximum number of characters of a news summary
// shown before truncation.
const SummaryLimit = 120

// truncationMarker is the fixed suffix appended to an over-length summary.
const truncationMarker = "..."

// paragraphDelimiter separates paragraphs within a chapter body.
const paragraphDelimiter = "\n\n"

// Paragraphs splits a chapter body into its display paragraphs.
// Segments are split on blank lines, trimmed, and dropped when empty;
// relative order is preserved. A body with no blank line yields one
// paragraph, an all-whitespace body yields none.
func Paragraphs(body string) []string {
	segments := strings.Split(body, paragraphDelimiter)
	paragraphs := make([]string, 0, len(segments))
	for _, seg := range segments {
		trimmed := strings.TrimSpace(seg)
		if trimmed == "" {
			continue
		}
		paragraphs = append(paragraphs, trimmed)
	}
	return paragraphs
}

// AnchorDate parses an ISO date-only string and anchors it to midday UTC.
// Anchoring at 12:00 keeps the calendar day stable under any fixed-offset
// conversion; midnight would shift to the previous day in negative-UTC
// offsets. Returns domain.ErrMalformedDate when the input does not parse.
func AnchorDate(isoDate string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrMalformedDate, isoDate)
	}
	return day.Add(12 * time.Hour), nil
}

// FormatChapterDate produces the display date line:
// "{day_of_week}, {month_name} {day}, {year}". The day-of-week and month
// labels are precomputed by the content API; only day-of-month and year
// are extracted from the date itself, via the midday anchor.
func FormatChapterDate(isoDate, dayOfWeek, monthName string) (string, error) {
	anchored, err := AnchorDate(isoDate)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s, %s %d, %d", dayOfWeek, monthName, anchored.Day(), anchored.Year()), nil
}

// TruncateSummary caps a news summary at SummaryLimit characters,
// appending the truncation marker when it was cut. The cut is a raw
// character-count cut and may land mid-word.
func TruncateSummary(summary string) string {
	runes := []rune(summary)
	if len(runes) <= SummaryLimit {
		return summary
	}
	return string(runes[:SummaryLimit]) + truncationMarker
}
