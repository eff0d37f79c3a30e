// Package extractor classifies page content by the semantics of its markup.
package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/web-text-organizer/models"
)

const (
	headingSelector   = "h1, h2, h3, h4, h5, h6"
	listSelector      = "ul, ol"
	containerSelector = "div, span, article, section"

	// Any of these below a container means its text is claimed elsewhere.
	recognizedSelector = "h1, h2, h3, h4, h5, h6, p, ul, ol, a, blockquote"
)

// Extract walks the document once per tag class and returns the
// structurally recognized entries. Elements with empty text are skipped.
func Extract(root *goquery.Selection) models.CategorySet {
	var set models.CategorySet

	root.Find(headingSelector).Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			set.Headings = append(set.Headings, models.Heading{Tag: goquery.NodeName(s), Text: text})
		}
	})

	root.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			set.Paragraphs = append(set.Paragraphs, text)
		}
	})

	root.Find(listSelector).Each(func(_ int, list *goquery.Selection) {
		listType := goquery.NodeName(list)
		list.Find("li").Each(func(_ int, item *goquery.Selection) {
			if text := normalizeText(item.Text()); text != "" {
				set.Lists = append(set.Lists, models.ListItem{Type: listType, Item: text})
			}
		})
	})

	root.Find("a").Each(func(_ int, s *goquery.Selection) {
		text := normalizeText(s.Text())
		if text == "" {
			return
		}
		href, _ := s.Attr("href")
		set.Links = append(set.Links, models.Link{Text: text, Href: href})
	})

	root.Find("blockquote").Each(func(_ int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			set.Quotes = append(set.Quotes, text)
		}
	})

	root.Find(containerSelector).Each(func(_ int, s *goquery.Selection) {
		if s.Find(recognizedSelector).Length() > 0 {
			return
		}
		if text := normalizeText(s.Text()); text != "" {
			set.Other = append(set.Other, models.Other{Tag: goquery.NodeName(s), Text: text})
		}
	})

	return set
}

// normalizeText trims surrounding whitespace and lower-cases.
func normalizeText(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
