package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// contentSelectors are tried in order; the first that matches becomes the
// extraction root. Job boards usually wrap the posting in one of these.
var contentSelectors = []string{
	".job-description",
	".description__text",
	"[class*='job-details']",
	"article",
	"main",
	"[role='main']",
	".content",
	"#content",
}

// noiseSelector removes chrome that never belongs to a posting.
const noiseSelector = "nav, footer, header, script, style, noscript, aside, .ad, .advertisement, .sidebar, .cookie-banner, .popup, .similar-jobs"

// ExtractTextFromHTML parses a saved job posting page and returns its main
// text content with block elements separated by newlines.
func ExtractTextFromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var root *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			root = selection.First()
			break
		}
	}
	if root == nil {
		root = doc.Find("body")
	}

	// Insert line breaks at block boundaries so line-oriented extractors
	// (title cascade, key phrases) still see structure.
	root.Find("br").Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithHtml("\n")
	})
	root.Find("p, div, li, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return root.Text(), nil
}
