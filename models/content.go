package models

// Category names in serialization order.
const (
	CategoryHeadings   = "headings"
	CategoryParagraphs = "paragraphs"
	CategoryLists      = "lists"
	CategoryLinks      = "links"
	CategoryQuotes     = "quotes"
	CategoryOther      = "other"
)

// TagInferred marks entries classified by heuristics rather than markup.
const TagInferred = "inferred"

// Heading is a heading entry; Tag is h1..h6 or TagInferred.
type Heading struct {
	Tag  string `json:"tag" yaml:"tag"`
	Text string `json:"text" yaml:"text"`
}

// ListItem is a list entry; Type is "ul", "ol" or TagInferred.
type ListItem struct {
	Type string `json:"type" yaml:"type"`
	Item string `json:"item" yaml:"item"`
}

// Link is an anchor entry. Href is empty for inferred links.
type Link struct {
	Text string `json:"text" yaml:"text"`
	Href string `json:"href" yaml:"href"`
}

// Other is a leaf container entry; Tag is the element name or TagInferred.
type Other struct {
	Tag  string `json:"tag" yaml:"tag"`
	Text string `json:"text" yaml:"text"`
}

// CategorySet groups normalized page text by semantic category.
// Field order is the output key order; empty categories are omitted.
type CategorySet struct {
	Headings   []Heading  `json:"headings,omitempty" yaml:"headings,omitempty"`
	Paragraphs []string   `json:"paragraphs,omitempty" yaml:"paragraphs,omitempty"`
	Lists      []ListItem `json:"lists,omitempty" yaml:"lists,omitempty"`
	Links      []Link     `json:"links,omitempty" yaml:"links,omitempty"`
	Quotes     []string   `json:"quotes,omitempty" yaml:"quotes,omitempty"`
	Other      []Other    `json:"other,omitempty" yaml:"other,omitempty"`
}

// Clone returns a copy whose slices do not share backing arrays with c.
func (c CategorySet) Clone() CategorySet {
	return CategorySet{
		Headings:   append([]Heading(nil), c.Headings...),
		Paragraphs: append([]string(nil), c.Paragraphs...),
		Lists:      append([]ListItem(nil), c.Lists...),
		Links:      append([]Link(nil), c.Links...),
		Quotes:     append([]string(nil), c.Quotes...),
		Other:      append([]Other(nil), c.Other...),
	}
}

// Categories returns the names of the non-empty categories in output order.
func (c CategorySet) Categories() []string {
	counts := c.Counts()
	names := make([]string, 0, len(counts))
	for _, name := range []string{CategoryHeadings, CategoryParagraphs, CategoryLists, CategoryLinks, CategoryQuotes, CategoryOther} {
		if counts[name] > 0 {
			names = append(names, name)
		}
	}
	return names
}

// Counts returns the number of entries per category.
func (c CategorySet) Counts() map[string]int {
	return map[string]int{
		CategoryHeadings:   len(c.Headings),
		CategoryParagraphs: len(c.Paragraphs),
		CategoryLists:      len(c.Lists),
		CategoryLinks:      len(c.Links),
		CategoryQuotes:     len(c.Quotes),
		CategoryOther:      len(c.Other),
	}
}

// Len returns the total number of entries across all categories.
func (c CategorySet) Len() int {
	return len(c.Headings) + len(c.Paragraphs) + len(c.Lists) + len(c.Links) + len(c.Quotes) + len(c.Other)
}
