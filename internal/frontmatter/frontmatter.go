// Package frontmatter splits companion doc content into a typed metadata
// header and a Markdown body. Parsing never fails: malformed input degrades
// to empty metadata with the original content as body.
package frontmatter

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/toolindex/internal/foundation"
)

// Delimiter separates the YAML header block from the Markdown body.
const Delimiter = "---"

// DocMeta is the typed view of a companion doc's frontmatter. Downstream
// code reads these fields, never the raw YAML mapping.
type DocMeta struct {
	Category foundation.Option[string]
	Tags     []string
}

// Parsed bundles the metadata header with the remaining body text.
type Parsed struct {
	Meta DocMeta
	Body string
}

func emptyMeta() DocMeta {
	return DocMeta{Category: foundation.None[string](), Tags: []string{}}
}

// Parse splits content into frontmatter metadata and body.
//
// Content that does not start with the delimiter is returned unchanged as
// body. A header that cannot be isolated (no closing delimiter) or does not
// parse as YAML also yields the original content as body.
func Parse(content string) Parsed {
	if !strings.HasPrefix(content, Delimiter) {
		return Parsed{Meta: emptyMeta(), Body: content}
	}

	parts := strings.SplitN(content, Delimiter, 3)
	if len(parts) < 3 {
		return Parsed{Meta: emptyMeta(), Body: content}
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(parts[1]), &fields); err != nil {
		return Parsed{Meta: emptyMeta(), Body: content}
	}

	return Parsed{
		Meta: metaFromFields(fields),
		Body: strings.TrimSpace(parts[2]),
	}
}

// ParseFile reads and parses a companion doc. An absent file is normal
// operation and yields empty metadata with an empty body.
func ParseFile(path string) Parsed {
	data, err := os.ReadFile(path)
	if err != nil {
		return Parsed{Meta: emptyMeta(), Body: ""}
	}
	return Parse(strings.TrimSpace(string(data)))
}

// metaFromFields resolves the freeform YAML mapping into typed fields.
// Tags are a literal pass-through: no deduplication, no case normalization.
func metaFromFields(fields map[string]any) DocMeta {
	meta := emptyMeta()
	if fields == nil {
		return meta
	}

	if v, ok := fields["category"].(string); ok && v != "" {
		meta.Category = foundation.Some(v)
	}

	if raw, ok := fields["tags"].([]any); ok {
		for _, item := range raw {
			switch v := item.(type) {
			case string:
				meta.Tags = append(meta.Tags, v)
			case int, int64, uint64, float64, bool:
				meta.Tags = append(meta.Tags, fmt.Sprintf("%v", v))
			}
		}
	}

	return meta
}
