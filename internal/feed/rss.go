// Package feed emits the RSS 2.0 feed of recent chapters.
package feed

import (
	"encoding/xml"
	"html"
	"time"

	"tidewriter/internal/config"
	"tidewriter/internal/domain"
	"tidewriter/internal/render"
)

// rfc822 is the RSS pubDate format.
const rfc822 = "Mon, 02 Jan 2006 15:04:05 +0000"

type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	AtomNS  string   `xml:"xmlns:atom,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title         string   `xml:"title"`
	Link          string   `xml:"link"`
	Description   string   `xml:"description"`
	Language      string   `xml:"language"`
	AtomLink      atomLink `xml:"atom:link"`
	LastBuildDate string   `xml:"lastBuildDate"`
	Items         []item   `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type item struct {
	Title       string      `xml:"title"`
	Link        string      `xml:"link"`
	GUID        guid        `xml:"guid"`
	PubDate     string      `xml:"pubDate"`
	Description description `xml:"description"`
}

type guid struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type description struct {
	Text string `xml:",cdata"`
}

// Build renders the feed for a list of archive entries, newest first as
// delivered. Entries with unparseable dates are skipped; one bad record
// must not break the whole feed.
func Build(site config.Site, entries []domain.ArchiveEntry, now time.Time) ([]byte, error) {
	items := make([]item, 0, len(entries))
	for _, entry := range entries {
		anchored, err := render.AnchorDate(entry.ChapterDate)
		if err != nil {
			continue
		}
		// Publication instant is the chapter's midnight UTC.
		published := anchored.Add(-12 * time.Hour)

		permalink := site.BaseURL + "/chapter/" + entry.ChapterDate
		items = append(items, item{
			Title:   entry.Title,
			Link:    permalink,
			GUID:    guid{IsPermaLink: "true", Value: permalink},
			PubDate: published.Format(rfc822),
			Description: description{
				Text: "<p>" + html.EscapeString(entry.Snippet) + "</p>",
			},
		})
	}

	doc := rss{
		Version: "2.0",
		AtomNS:  "http://www.w3.org/2005/Atom",
		Channel: channel{
			Title:       site.Name,
			Link:        site.BaseURL,
			Description: site.Tagline,
			Language:    "en-us",
			AtomLink: atomLink{
				Href: site.BaseURL + "/feed.xml",
				Rel:  "self",
				Type: "application/rss+xml",
			},
			LastBuildDate: now.UTC().Format(rfc822),
			Items:         items,
		},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	return append([]byte(xml.Header), body...), nil
}
