package web

import (
	"regexp"

	"tidewriter/internal/domain"
	"tidewriter/internal/render"
)

// chapterDateRegex matches ISO 8601 date-only path parameters.
var chapterDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseChapterDate validates a chapter date path parameter.
// Returns domain.ErrMalformedDate when the value is not a calendar date,
// so a bad URL never reaches the content API.
func ParseChapterDate(param string) (string, error) {
	if !chapterDateRegex.MatchString(param) {
		return "", domain.ErrMalformedDate
	}
	// Shape is right; make sure it is a real calendar date too.
	if _, err := render.AnchorDate(param); err != nil {
		return "", err
	}
	return param, nil
}
