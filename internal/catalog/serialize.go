package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// WriteCatalog renders the ordered records as pretty-printed JSON and
// replaces any prior catalog wholesale. Non-ASCII characters are preserved
// unescaped so the document stays human-readable.
func WriteCatalog(path string, tools []Tool) error {
	data, err := MarshalCatalog(tools)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}
	return nil
}

// MarshalCatalog produces the canonical catalog encoding: two-space indent,
// stable field order, HTML escaping off, trailing newline.
func MarshalCatalog(tools []Tool) ([]byte, error) {
	if tools == nil {
		tools = []Tool{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tools); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}
