package rustdoc

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageStats is a coarse structural summary of the docs page, used by the
// inspect command to sanity-check the layout before trusting the extractor.
type PageStats struct {
	Anchors  int
	Markers  int
	Sections []string
}

func Summarize(body string) (*PageStats, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, err
	}

	stats := &PageStats{
		Anchors: doc.Find("a[href]").Length(),
		Markers: strings.Count(body, "Error for "),
	}

	doc.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		if title := strings.TrimSpace(s.Text()); title != "" {
			stats.Sections = append(stats.Sections, title)
		}
	})

	return stats, nil
}
