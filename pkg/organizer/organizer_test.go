package organizer

import (
	"strings"
	"testing"
	"time"

	"github.com/dtnitsch/web-text-organizer/models"
	"github.com/dtnitsch/web-text-organizer/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func organize(t *testing.T, html string) *models.ExtractionResult {
	t.Helper()
	doc, err := parser.Parse([]byte(html))
	require.NoError(t, err)
	return New(WithClock(func() time.Time { return fixedTime })).Organize("https://example.com", doc)
}

const samplePage = `<html><head><title>Sample</title><script>track()</script></head>
<body>
  <h2>Hello World</h2>
  <p>This paragraph is long enough to be recognized by its tag alone.</p>
  <ul><li>First item</li><li>Second item</li></ul>
  <a href="https://example.com/about">About</a>
  <div><blockquote>He said "Hi" to everyone</blockquote></div>
  <div>Leaf container</div>
  <pre>loose text
` + "abcdefghijabcdefghijabcdefghijabcdefghijabcdefghijabcdefghij" + `
visit www.example.com for the full list of our products</pre>
</body></html>`

func TestOrganize_SamplePage(t *testing.T) {
	r := organize(t, samplePage)

	assert.Equal(t, "https://example.com", r.PageURL)
	assert.Equal(t, fixedTime, r.ExtractedAt)

	assert.Equal(t, []models.Heading{
		{Tag: "h2", Text: "hello world"},
		{Tag: models.TagInferred, Text: "sample"},
		{Tag: models.TagInferred, Text: "loose text"},
	}, r.Content.Headings)
	assert.Equal(t, []string{
		"this paragraph is long enough to be recognized by its tag alone.",
		strings.Repeat("abcdefghij", 6),
	}, r.Content.Paragraphs)
	assert.Equal(t, []models.ListItem{
		{Type: "ul", Item: "first item"},
		{Type: "ul", Item: "second item"},
	}, r.Content.Lists)
	assert.Equal(t, []models.Link{
		{Text: "about", Href: "https://example.com/about"},
		{Text: "visit www.example.com for the full list of our products", Href: ""},
	}, r.Content.Links)
	assert.Equal(t, []string{`he said "hi" to everyone`}, r.Content.Quotes)
	assert.Equal(t, []models.Other{{Tag: "div", Text: "leaf container"}}, r.Content.Other)
}

func TestOrganize_Totals(t *testing.T) {
	r := organize(t, "<p>one</p><pre>two\n\nthree</pre><p>café</p>")

	// Rendered text: "one\ntwo\n\nthree\ncafé"
	assert.Equal(t, 19, r.TotalCharacters)
	assert.Equal(t, 5, r.TotalLines)
}

func TestOrganize_EmptyPage(t *testing.T) {
	r := organize(t, "")

	assert.Zero(t, r.TotalCharacters)
	assert.Zero(t, r.TotalLines)
	assert.Empty(t, r.Content.Categories())

	data, err := r.MarshalIndentJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"content": {}`)
}

func TestOrganize_NoEmptyCategoriesInOutput(t *testing.T) {
	r := organize(t, "<h1>Only a heading</h1>")

	data, err := r.MarshalIndentJSON()
	require.NoError(t, err)

	assert.Equal(t, []string{models.CategoryHeadings}, r.Content.Categories())
	for _, name := range []string{"paragraphs", "lists", "links", "quotes", "other"} {
		assert.NotContains(t, string(data), `"`+name+`"`)
	}
}

func TestOrganize_Idempotent(t *testing.T) {
	first := organize(t, samplePage)
	second := organize(t, samplePage)

	assert.Equal(t, first.Content, second.Content)
}

func TestOrganize_NoscriptTrackingIframe(t *testing.T) {
	r := organize(t, `<body><noscript><iframe src="https://www.googletagmanager.com/ns.html?id=GTM-ABC" height="0" width="0"></iframe></noscript><p>hi</p></body>`)

	assert.Equal(t, []string{"hi"}, r.Content.Paragraphs)
	assert.Empty(t, r.Content.Links)
	assert.Equal(t, []string{models.CategoryParagraphs}, r.Content.Categories())
	assert.Equal(t, 2, r.TotalCharacters)
	assert.Equal(t, 1, r.TotalLines)
}
