package feed_test

import (
	"strings"
	"testing"
	"time"

	"tidewriter/internal/config"
	"tidewriter/internal/domain"
	"tidewriter/internal/feed"
)

func testSite() config.Site {
	return config.Site{
		Name:    "Tidewriter",
		Tagline: "A daily tale woven from weather, tides, and local news",
		BaseURL: "https://tidewriter.example.com",
	}
}

func testEntries() []domain.ArchiveEntry {
	return []domain.ArchiveEntry{
		{ChapterDate: "2024-06-15", Title: "The Morning the Marsh Went Quiet", Snippet: "The fog sat low...", Season: "summer"},
		{ChapterDate: "2024-06-14", Title: "What the Dredge Brought Up", Snippet: "Nobody expected...", Season: "summer"},
	}
}

func TestBuild_ValidEntries_ProducesRSSWithItems(t *testing.T) {
	// Arrange
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	// Act
	body, err := feed.Build(testSite(), testEntries(), now)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(body)
	if !strings.HasPrefix(out, "<?xml") {
		t.Error("feed should start with an XML declaration")
	}
	if !strings.Contains(out, `<rss version="2.0"`) {
		t.Error("missing rss version attribute")
	}
	if got := strings.Count(out, "<item>"); got != 2 {
		t.Errorf("items: got %d, want 2", got)
	}
	if !strings.Contains(out, "<title>The Morning the Marsh Went Quiet</title>") {
		t.Error("missing chapter title")
	}
}

func TestBuild_Permalinks_PointAtChapterPages(t *testing.T) {
	// Arrange / Act
	body, err := feed.Build(testSite(), testEntries(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assert
	out := string(body)
	if !strings.Contains(out, "<link>https://tidewriter.example.com/chapter/2024-06-15</link>") {
		t.Error("missing permalink for 2024-06-15")
	}
	if !strings.Contains(out, `<guid isPermaLink="true">https://tidewriter.example.com/chapter/2024-06-14</guid>`) {
		t.Error("missing permalink guid for 2024-06-14")
	}
}

func TestBuild_PubDate_IsMidnightUTCInRFC822(t *testing.T) {
	// Arrange / Act
	body, err := feed.Build(testSite(), testEntries()[:1], time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Assert
	if !strings.Contains(string(body), "<pubDate>Sat, 15 Jun 2024 00:00:00 +0000</pubDate>") {
		t.Errorf("pubDate missing or wrong, feed:\n%s", body)
	}
}

func TestBuild_MalformedEntryDate_SkipsEntryOnly(t *testing.T) {
	// Arrange
	entries := append(testEntries(), domain.ArchiveEntry{
		ChapterDate: "someday", Title: "Broken Record",
	})

	// Act
	body, err := feed.Build(testSite(), entries, time.Now())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(body)
	if strings.Contains(out, "Broken Record") {
		t.Error("entry with malformed date should be skipped")
	}
	if got := strings.Count(out, "<item>"); got != 2 {
		t.Errorf("items: got %d, want 2", got)
	}
}

func TestBuild_SnippetHTML_IsEscapedInsideDescription(t *testing.T) {
	// Arrange
	entries := []domain.ArchiveEntry{
		{ChapterDate: "2024-06-15", Title: "Ampersands & Angles", Snippet: `Fish & chips <on> the "wharf"`},
	}

	// Act
	body, err := feed.Build(testSite(), entries, time.Now())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(body)
	// The snippet is HTML-escaped, then carried verbatim inside CDATA.
	if !strings.Contains(out, "Fish &amp; chips &lt;on&gt;") {
		t.Errorf("snippet not escaped as expected:\n%s", out)
	}
	if strings.Contains(out, "<on>") {
		t.Error("raw angle brackets from the snippet must not appear as markup")
	}
}
