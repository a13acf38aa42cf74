package domain

import "errors"

var (
	// ErrChapterNotFound is returned when no chapter exists for the
	// requested date (or no chapter has been published yet).
	ErrChapterNotFound = errors.New("chapter not found")

	// ErrMalformedDate is returned when a chapter date cannot be parsed
	// as a calendar date.
	ErrMalformedDate = errors.New("malformed chapter date")

	// ErrUpstream is returned when the content API fails or answers with
	// an unexpected status.
	ErrUpstream = errors.New("content API request failed")

	// ErrRateLimited is returned when rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)
