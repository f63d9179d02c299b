// Package catalog discovers generated tool pages and assembles the ordered
// metadata catalog consumed by downstream page-generation tooling.
package catalog

import "time"

// Tool is one catalog record. Field order is the serialized field order.
type Tool struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
}

// Artifact is a discovered tool page plus the derived paths the pipeline
// needs. Slug is the filename stem and is unique because filenames are.
type Artifact struct {
	Path     string
	Name     string
	Slug     string
	DocsPath string
}

// Result is the outcome of one full catalog build.
type Result struct {
	RunID      string
	Tools      []Tool
	TierCounts map[string]int
	Started    time.Time
	Finished   time.Time
}
