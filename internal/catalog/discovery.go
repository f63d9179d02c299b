package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	artifactExt = ".html"
	docsSuffix  = ".docs.md"
)

// Discover lists the tool pages in dir, excluding the entry page, sorted
// lexicographically by name so downstream ordering is deterministic.
// Directory enumeration failure is the one fatal error in the pipeline.
func Discover(dir, entry string) ([]Artifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list site directory %s: %w", dir, err)
	}

	artifacts := make([]Artifact, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, artifactExt) || name == entry {
			continue
		}
		slug := strings.TrimSuffix(name, artifactExt)
		artifacts = append(artifacts, Artifact{
			Path:     filepath.Join(dir, name),
			Name:     name,
			Slug:     slug,
			DocsPath: filepath.Join(dir, slug+docsSuffix),
		})
	}

	sort.Slice(artifacts, func(i, j int) bool { return artifacts[i].Name < artifacts[j].Name })
	return artifacts, nil
}
