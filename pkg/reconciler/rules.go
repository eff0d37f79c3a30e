package reconciler

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/web-text-organizer/models"
)

const (
	headingMaxLen   = 40 // lines shorter than this read as headings
	paragraphMinLen = 50 // lines longer than this read as paragraphs
)

// listMarker matches Unicode whitespace and digits after the marker.
var listMarker = regexp.MustCompile(`^[-*+•][\s\p{Z}]|^\p{Nd}+\.[\s\p{Z}]|^[a-z]\)[\s\p{Z}]`)

// Rule is one step of the fallback classification chain.
type Rule struct {
	Category string
	Match    func(line string) bool
	Add      func(set *models.CategorySet, line string)
}

// Rules is evaluated in order; the first match claims the line.
var Rules = []Rule{
	{
		Category: models.CategoryHeadings,
		Match: func(line string) bool {
			return isUpper(line) || utf8.RuneCountInString(line) < headingMaxLen || strings.HasSuffix(line, ":")
		},
		Add: func(set *models.CategorySet, line string) {
			set.Headings = append(set.Headings, models.Heading{Tag: models.TagInferred, Text: line})
		},
	},
	{
		Category: models.CategoryLists,
		Match:    listMarker.MatchString,
		Add: func(set *models.CategorySet, line string) {
			set.Lists = append(set.Lists, models.ListItem{Type: models.TagInferred, Item: line})
		},
	},
	{
		Category: models.CategoryLinks,
		Match: func(line string) bool {
			return strings.Contains(line, "http") || strings.Contains(line, "www.")
		},
		Add: func(set *models.CategorySet, line string) {
			set.Links = append(set.Links, models.Link{Text: line, Href: ""})
		},
	},
	{
		Category: models.CategoryQuotes,
		Match: func(line string) bool {
			return strings.HasPrefix(line, ">") || strings.ContainsAny(line, `"'`)
		},
		Add: func(set *models.CategorySet, line string) {
			set.Quotes = append(set.Quotes, line)
		},
	},
	{
		Category: models.CategoryParagraphs,
		Match: func(line string) bool {
			return utf8.RuneCountInString(line) > paragraphMinLen
		},
		Add: func(set *models.CategorySet, line string) {
			set.Paragraphs = append(set.Paragraphs, line)
		},
	},
	{
		Category: models.CategoryOther,
		Match:    func(string) bool { return true },
		Add: func(set *models.CategorySet, line string) {
			set.Other = append(set.Other, models.Other{Tag: models.TagInferred, Text: line})
		},
	},
}

// Classify returns the first rule matching line. The last rule always matches.
func Classify(line string) Rule {
	for _, r := range Rules {
		if r.Match(line) {
			return r
		}
	}
	return Rules[len(Rules)-1]
}

// isUpper reports whether line has at least one cased letter and no
// lower-case or title-case letters.
func isUpper(line string) bool {
	cased := false
	for _, r := range line {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}
