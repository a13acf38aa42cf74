package render_test

import (
	"errors"
	"testing"

	"tidewriter/internal/domain"
	"tidewriter/internal/render"
	"tidewriter/test/fixtures"
)

func TestBuildPresentation_FullRecordWithMeta_RendersEverything(t *testing.T) {
	// Arrange
	rec := fixtures.FullChapter()

	// Act
	p, err := render.BuildPresentation(rec, true)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Title != rec.Title {
		t.Errorf("title: got %q, want %q", p.Title, rec.Title)
	}
	if p.DateLine != "Saturday, June 15, 2024" {
		t.Errorf("date line: got %q", p.DateLine)
	}
	if len(p.Paragraphs) != 3 {
		t.Errorf("paragraphs: got %d, want 3", len(p.Paragraphs))
	}
	if p.Meta == nil {
		t.Fatal("expected metadata block")
	}
	if p.Meta.Weather != rec.Weather {
		t.Errorf("weather: got %q, want %q", p.Meta.Weather, rec.Weather)
	}
	if p.Meta.Tide != rec.TideState {
		t.Errorf("tide: got %q, want %q", p.Meta.Tide, rec.TideState)
	}
	if p.Meta.Season != rec.Season {
		t.Errorf("season: got %q, want %q", p.Meta.Season, rec.Season)
	}
}

func TestBuildPresentation_ShowMetaFalse_MetaIsNil(t *testing.T) {
	// Arrange
	rec := fixtures.FullChapter()

	// Act
	p, err := render.BuildPresentation(rec, false)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Meta != nil {
		t.Error("meta should be nil when metadata display is off")
	}
	if p.Title == "" || len(p.Paragraphs) == 0 {
		t.Error("title and body should still render without metadata")
	}
}

func TestBuildPresentation_OptionalFieldsAbsent_OmittedFromMeta(t *testing.T) {
	// Arrange
	rec := fixtures.FullChapter()
	rec.Weather = ""
	rec.TideState = ""

	// Act
	p, err := render.BuildPresentation(rec, true)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Meta.Weather != "" {
		t.Errorf("weather should be empty, got %q", p.Meta.Weather)
	}
	if p.Meta.Tide != "" {
		t.Errorf("tide should be empty, got %q", p.Meta.Tide)
	}
	if p.Meta.Season == "" {
		t.Error("season is required and must always be present")
	}
}

func TestBuildPresentation_NewsItems_OrderPreservedAndSummariesTruncated(t *testing.T) {
	// Arrange
	rec := fixtures.FullChapter()

	// Act
	p, err := render.BuildPresentation(rec, true)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	news := p.Meta.News
	if news.State != render.NewsListed {
		t.Fatalf("state: got %v, want %v", news.State, render.NewsListed)
	}
	if len(news.Items) != len(rec.NewsItems) {
		t.Fatalf("items: got %d, want %d", len(news.Items), len(rec.NewsItems))
	}
	for i, item := range news.Items {
		if item.Headline != rec.NewsItems[i].Headline {
			t.Errorf("item %d headline reordered or modified: got %q", i, item.Headline)
		}
		if item.ArticleURL != rec.NewsItems[i].ArticleURL {
			t.Errorf("item %d url: got %q", i, item.ArticleURL)
		}
		if item.Summary != render.TruncateSummary(rec.NewsItems[i].Summary) {
			t.Errorf("item %d summary not truncated", i)
		}
	}
}

func TestBuildPresentation_EmptyNewsList_RendersFixedNotice(t *testing.T) {
	// Arrange
	rec := fixtures.FullChapter()
	rec.NewsItems = nil

	// Act
	p, err := render.BuildPresentation(rec, true)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	news := p.Meta.News
	if news.State != render.NewsAbsent {
		t.Fatalf("state: got %v, want %v", news.State, render.NewsAbsent)
	}
	if len(news.Items) != 0 {
		t.Error("absent state must not carry items")
	}
	if news.Notice != render.NoNewsNotice {
		t.Errorf("notice: got %q, want the fixed sentence", news.Notice)
	}
}

func TestBuildPresentation_EmptyBody_RendersTitleWithZeroParagraphs(t *testing.T) {
	// Arrange
	rec := fixtures.FullChapter()
	rec.Body = "   \n\n  "

	// Act
	p, err := render.BuildPresentation(rec, true)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Paragraphs) != 0 {
		t.Errorf("paragraphs: got %d, want 0", len(p.Paragraphs))
	}
	if p.Title == "" {
		t.Error("title should still render")
	}
}

func TestBuildPresentation_MalformedDate_FailsThatChapterOnly(t *testing.T) {
	// Arrange
	rec := fixtures.FullChapter()
	rec.ChapterDate = "not-a-date"

	// Act
	p, err := render.BuildPresentation(rec, true)

	// Assert
	if !errors.Is(err, domain.ErrMalformedDate) {
		t.Errorf("expected ErrMalformedDate, got %v", err)
	}
	if p != nil {
		t.Error("no partial presentation should be returned")
	}
}

func TestBuildPresentation_InputRecordIsNeverMutated(t *testing.T) {
	// Arrange
	rec := fixtures.FullChapter()
	originalBody := rec.Body
	originalFirstSummary := rec.NewsItems[0].Summary

	// Act
	if _, err := render.BuildPresentation(rec, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := render.BuildPresentation(rec, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assert
	if rec.Body != originalBody {
		t.Error("body was mutated")
	}
	if rec.NewsItems[0].Summary != originalFirstSummary {
		t.Error("news summary was mutated")
	}
}
