// Package api is the HTTP client for the content API that produces
// chapter records. The backend is a black box: this adapter only knows
// its JSON shapes and status codes.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tidewriter/internal/domain"
)

const userAgent = "tidewriter/1.0"

// Client fetches chapters from the content API.
type Client struct {
	baseURL     string
	adminAPIKey string
	httpClient  *http.Client
}

// NewClient creates a content API client. The admin API key is only
// sent on admin endpoints and may be empty.
func NewClient(baseURL, adminAPIKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		adminAPIKey: adminAPIKey,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// Latest returns the most recent chapter, or domain.ErrChapterNotFound
// when no chapter has been published yet.
func (c *Client) Latest(ctx context.Context) (*domain.ChapterRecord, error) {
	var rec *domain.ChapterRecord
	if err := c.getJSON(ctx, "/api/story/latest", &rec); err != nil {
		return nil, err
	}
	// The latest endpoint answers 200 with a JSON null before the first
	// chapter exists.
	if rec == nil {
		return nil, domain.ErrChapterNotFound
	}
	return rec, validate(rec)
}

// ByDate returns the chapter for an ISO date-only string.
func (c *Client) ByDate(ctx context.Context, isoDate string) (*domain.ChapterRecord, error) {
	var rec *domain.ChapterRecord
	if err := c.getJSON(ctx, "/api/story/date/"+isoDate, &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrChapterNotFound
	}
	return rec, validate(rec)
}

// Archive returns one page of the chapter archive.
func (c *Client) Archive(ctx context.Context, page, pageSize int) (*domain.ArchivePage, error) {
	path := "/api/story/archive?page=" + strconv.Itoa(page) + "&page_size=" + strconv.Itoa(pageSize)
	var archive domain.ArchivePage
	if err := c.getJSON(ctx, path, &archive); err != nil {
		return nil, err
	}
	return &archive, nil
}

// RefreshNews asks the backend to re-fetch local news. Requires the
// admin API key. Returns the number of updated news items.
func (c *Client) RefreshNews(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/admin/refresh-news", nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("User-Agent", userAgent)
	if c.adminAPIKey != "" {
		req.Header.Set("X-API-Key", c.adminAPIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode); err != nil {
		return 0, err
	}

	var result struct {
		UpdatedCount int `json:"updated_count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("%w: decoding refresh response: %v", domain.ErrUpstream, err)
	}
	return result.UpdatedCount, nil
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", domain.ErrUpstream, path, err)
	}
	return nil
}

// statusError maps upstream status codes to domain errors.
func statusError(status int) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusNotFound:
		return domain.ErrChapterNotFound
	case status == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	default:
		return fmt.Errorf("%w: status %d", domain.ErrUpstream, status)
	}
}

// validate rejects records nothing downstream can key: a chapter with no
// date cannot be linked, cached, or formatted.
func validate(rec *domain.ChapterRecord) error {
	if rec.ChapterDate == "" {
		return fmt.Errorf("%w: record has no chapter_date", domain.ErrMalformedDate)
	}
	return nil
}
