package extractor

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/web-text-organizer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Selection
}

func TestExtract_Headings(t *testing.T) {
	set := Extract(mustDoc(t, `<h3>Third</h3><h2>Hello World</h2><h1>  </h1><h6> Six </h6>`))

	assert.Equal(t, []models.Heading{
		{Tag: "h3", Text: "third"},
		{Tag: "h2", Text: "hello world"},
		{Tag: "h6", Text: "six"},
	}, set.Headings)
}

func TestExtract_Paragraphs(t *testing.T) {
	set := Extract(mustDoc(t, `<p>First <em>Para</em></p><p></p><p>
		Second
	</p>`))

	assert.Equal(t, []string{"first para", "second"}, set.Paragraphs)
}

func TestExtract_ListsFollowContainerOrder(t *testing.T) {
	html := `
<ol><li>One</li><li>Two</li></ol>
<ul><li>Apple</li><li> </li><li>Pear</li></ul>`

	set := Extract(mustDoc(t, html))

	assert.Equal(t, []models.ListItem{
		{Type: "ol", Item: "one"},
		{Type: "ol", Item: "two"},
		{Type: "ul", Item: "apple"},
		{Type: "ul", Item: "pear"},
	}, set.Lists)
}

func TestExtract_NestedListItemsAppearPerContainer(t *testing.T) {
	html := `<ul><li>Outer<ol><li>Inner</li></ol></li></ul>`

	set := Extract(mustDoc(t, html))

	assert.Equal(t, []models.ListItem{
		{Type: "ul", Item: "outerinner"},
		{Type: "ul", Item: "inner"},
		{Type: "ol", Item: "inner"},
	}, set.Lists)
}

func TestExtract_Links(t *testing.T) {
	html := `<a href="/about">About Us</a><a href="/empty"> </a><a name="top">Top</a>`

	set := Extract(mustDoc(t, html))

	assert.Equal(t, []models.Link{
		{Text: "about us", Href: "/about"},
		{Text: "top", Href: ""},
	}, set.Links)
}

func TestExtract_QuotesAndWrappingContainer(t *testing.T) {
	html := `<div><blockquote>He said "Hi"</blockquote></div>`

	set := Extract(mustDoc(t, html))

	assert.Equal(t, []string{`he said "hi"`}, set.Quotes)
	assert.Empty(t, set.Other)
}

func TestExtract_OtherOnlyLeafContainers(t *testing.T) {
	html := `
<section>
  <div>Leaf Div</div>
  <div><p>not a leaf</p></div>
  <article><span>Inner Span</span></article>
  <span>  </span>
  <div><a href="#">link inside</a></div>
  <div><li>Orphan Item</li></div>
</section>`

	set := Extract(mustDoc(t, html))

	assert.Equal(t, []models.Other{
		{Tag: "div", Text: "leaf div"},
		{Tag: "article", Text: "inner span"},
		{Tag: "span", Text: "inner span"},
		{Tag: "div", Text: "orphan item"},
	}, set.Other)
}

func TestExtract_EmptyDocument(t *testing.T) {
	set := Extract(mustDoc(t, ""))
	assert.Zero(t, set.Len())
}

func TestExtract_Deterministic(t *testing.T) {
	html := `<h1>A</h1><p>b</p><ul><li>c</li></ul><a href="x">d</a><blockquote>e</blockquote><div>f</div>`

	first := Extract(mustDoc(t, html))
	second := Extract(mustDoc(t, html))

	assert.Equal(t, first, second)
	assert.Equal(t, 6, first.Len())
}
