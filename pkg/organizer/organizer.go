// Package organizer composes structural extraction and line reconciliation
// into a single ExtractionResult.
package organizer

import (
	"time"
	"unicode/utf8"

	"github.com/dtnitsch/web-text-organizer/models"
	"github.com/dtnitsch/web-text-organizer/pkg/extractor"
	"github.com/dtnitsch/web-text-organizer/pkg/parser"
	"github.com/dtnitsch/web-text-organizer/pkg/reconciler"
)

type Organizer struct {
	now func() time.Time
}

// Option configures an Organizer.
type Option func(*Organizer)

// WithClock overrides the source of extracted_at timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Organizer) {
		o.now = now
	}
}

func New(opts ...Option) *Organizer {
	o := &Organizer{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Organize categorizes doc. Totals describe the full rendered text,
// blank lines included.
func (o *Organizer) Organize(pageURL string, doc *parser.Document) *models.ExtractionResult {
	text := doc.Text()

	content := extractor.Extract(doc.Selection())
	content = reconciler.Reconcile(content, doc.Lines())

	return &models.ExtractionResult{
		PageURL:         pageURL,
		ExtractedAt:     o.now(),
		TotalCharacters: utf8.RuneCountInString(text),
		TotalLines:      len(parser.SplitLines(text)),
		Content:         content,
	}
}
