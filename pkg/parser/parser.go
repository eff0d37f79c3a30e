// Package parser turns raw markup into a queryable document and its
// line-separated plain-text rendering.
package parser

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed page with script and style elements removed.
type Document struct {
	doc  *goquery.Document
	text string
}

// Parse builds a Document from raw HTML.
func Parse(rawHTML []byte) (*Document, error) {
	// With scripting off, noscript children are parsed as elements rather
	// than a single raw-text node.
	root, err := html.ParseWithOptions(bytes.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	doc.Find("script, style").Remove()

	return &Document{
		doc:  doc,
		text: renderText(doc.Selection),
	}, nil
}

// Selection returns the root selection for tag queries.
func (d *Document) Selection() *goquery.Selection {
	return d.doc.Selection
}

// Text returns every non-blank text node, trimmed, joined by newlines.
func (d *Document) Text() string {
	return d.text
}

// Lines returns the trimmed, non-blank lines of Text in order.
func (d *Document) Lines() []string {
	var lines []string
	for _, line := range SplitLines(d.text) {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func renderText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}

// SplitLines splits s at line boundaries. A trailing boundary does not
// produce an empty final line, and "\r\n" counts as one boundary.
func SplitLines(s string) []string {
	var lines []string
	start := 0
	prevCR := false
	for i, r := range s {
		if r == '\n' && prevCR {
			start = i + 1
			prevCR = false
			continue
		}
		prevCR = false
		if isLineBoundary(r) {
			lines = append(lines, s[start:i])
			start = i + utf8.RuneLen(r)
			prevCR = r == '\r'
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
