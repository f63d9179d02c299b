package catalog

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ResolveTitle extracts the display title from a tool page. It returns the
// trimmed text of the first <title> element (any case, embedded newlines
// tolerated) and falls back to a name derived from the filename stem when
// the page has no usable title. It never fails; malformed HTML simply ends
// tokenization.
func ResolveTitle(content, slug string) string {
	if t := titleFromHTML(content); t != "" {
		return t
	}
	return TitleFromSlug(slug)
}

func titleFromHTML(content string) string {
	z := html.NewTokenizer(strings.NewReader(content))
	inTitle := false
	var b strings.Builder

	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			if string(name) == "title" {
				inTitle = true
			}
		case html.TextToken:
			if inTitle {
				b.Write(z.Text())
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "title" {
				return strings.TrimSpace(b.String())
			}
		}
	}
}

// TitleFromSlug derives a display title from a filename stem: hyphens become
// spaces, each word is capitalized. A fresh Caser per call keeps this safe
// under the builder's worker pool; Casers carry mutable state.
func TitleFromSlug(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
