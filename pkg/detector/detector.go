// Package detector derives descriptive page metadata that is recorded
// alongside each run: readability title fields, language and domain type.
package detector

import (
	"bytes"
	"net/url"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"
)

// languageSampleRunes caps how much text is fed to language detection.
const languageSampleRunes = 2000

// PageInfo holds page metadata gathered from cheap analysis.
type PageInfo struct {
	Title    string
	Byline   string
	Excerpt  string
	SiteName string

	Language           string  // ISO-639-1, lower case; empty when undetermined
	LanguageConfidence float64 // 0-1

	DomainType string // gov, edu, academic, docs, mobile, commercial, unknown
}

var supportedLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Portuguese,
	lingua.Italian,
	lingua.Dutch,
}

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

func detectorInstance() lingua.LanguageDetector {
	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(supportedLanguages...).
			Build()
	})
	return languageDetector
}

// Analyze inspects the raw page and its rendered text. It never fails;
// fields it cannot determine are left empty.
func Analyze(rawURL string, rawHTML []byte, text string) *PageInfo {
	info := &PageInfo{DomainType: "unknown"}

	parsedURL, err := url.Parse(rawURL)
	if err == nil && parsedURL.Host != "" {
		info.DomainType = detectDomainType(parsedURL)

		parser := readability.NewParser()
		if article, err := parser.Parse(bytes.NewReader(rawHTML), parsedURL); err == nil {
			info.Title = strings.TrimSpace(article.Title)
			info.Byline = strings.TrimSpace(article.Byline)
			info.Excerpt = strings.TrimSpace(article.Excerpt)
			info.SiteName = strings.TrimSpace(article.SiteName)
		}
	}

	info.Language, info.LanguageConfidence = DetectLanguage(text)

	return info
}

// DetectLanguage returns the ISO-639-1 code of text and its confidence.
func DetectLanguage(text string) (string, float64) {
	sample := truncateRunes(strings.TrimSpace(text), languageSampleRunes)
	if sample == "" {
		return "", 0
	}

	d := detectorInstance()
	lang, ok := d.DetectLanguageOf(sample)
	if !ok {
		return "", 0
	}
	return strings.ToLower(lang.IsoCode639_1().String()), d.ComputeLanguageConfidence(sample, lang)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// detectDomainType identifies domain classification
func detectDomainType(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	path := strings.ToLower(u.Path)

	if strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".mil") {
		return "gov"
	}

	if strings.HasSuffix(host, ".edu") {
		return "edu"
	}

	academicDomains := []string{
		"arxiv.org", "doi.org", "pubmed.ncbi.nlm.nih.gov",
		"scholar.google.com", "researchgate.net", "academia.edu",
		"biorxiv.org", "medrxiv.org", "ssrn.com",
	}
	for _, domain := range academicDomains {
		if strings.Contains(host, domain) {
			return "academic"
		}
	}

	if strings.HasPrefix(host, "docs.") || strings.HasPrefix(host, "api.") ||
		strings.Contains(path, "/docs/") || strings.Contains(path, "/api/") {
		return "docs"
	}

	if strings.HasPrefix(host, "m.") || strings.HasPrefix(host, "mobile.") {
		return "mobile"
	}

	return "commercial"
}
