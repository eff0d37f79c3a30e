// Package reconciler assigns categories to plain-text lines that markup
// based extraction did not already account for.
package reconciler

import (
	"strings"

	"github.com/dtnitsch/web-text-organizer/models"
)

// Reconcile classifies every uncovered line and returns a new set holding
// the original entries followed by the inferred ones. Coverage is judged
// against set as passed in; lines added during the pass are not consulted.
func Reconcile(set models.CategorySet, lines []string) models.CategorySet {
	covered := newCoverage(set)
	out := set.Clone()

	for _, line := range lines {
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" || covered.contains(line) {
			continue
		}
		Classify(line).Add(&out, line)
	}

	return out
}

// coverage indexes the entries a line may duplicate: bare strings match
// by equality, record texts by substring.
type coverage struct {
	bare    map[string]struct{}
	records []string
}

func newCoverage(set models.CategorySet) coverage {
	c := coverage{bare: make(map[string]struct{}, len(set.Paragraphs)+len(set.Quotes))}
	for _, s := range set.Paragraphs {
		c.bare[s] = struct{}{}
	}
	for _, s := range set.Quotes {
		c.bare[s] = struct{}{}
	}
	for _, h := range set.Headings {
		c.records = append(c.records, h.Text)
	}
	for _, l := range set.Lists {
		c.records = append(c.records, l.Item)
	}
	for _, l := range set.Links {
		c.records = append(c.records, l.Text)
	}
	for _, o := range set.Other {
		c.records = append(c.records, o.Text)
	}
	return c
}

func (c coverage) contains(line string) bool {
	if _, ok := c.bare[line]; ok {
		return true
	}
	for _, text := range c.records {
		if strings.Contains(text, line) {
			return true
		}
	}
	return false
}
