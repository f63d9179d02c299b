// Package lint runs advisory checks over companion docs. It never mutates
// files and never blocks a catalog build; the build pipeline applies its
// own fallbacks regardless of what lint reports.
package lint

import (
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/toolindex/internal/catalog"
	"git.home.luguber.info/inful/toolindex/internal/frontmatter"
)

// Rule identifiers, stable for machine consumption.
const (
	RuleMissingDocs       = "missing-docs"
	RuleUnterminatedFront = "unterminated-frontmatter"
	RuleInvalidFront      = "invalid-frontmatter"
	RuleInvalidCategory   = "invalid-category"
	RuleInvalidTags       = "invalid-tags"
	RuleNoDescription     = "missing-description"
	RuleHeadingsOnly      = "headings-only"
)

// Issue is one advisory finding.
type Issue struct {
	Slug    string
	Path    string
	Rule    string
	Message string
}

// Result summarizes a lint pass.
type Result struct {
	Files  int
	Issues []Issue
}

var markdown = goldmark.New()

// Run checks every companion doc for the tool pages in dir.
func Run(dir, entry string) (*Result, error) {
	artifacts, err := catalog.Discover(dir, entry)
	if err != nil {
		return nil, err
	}

	result := &Result{Issues: []Issue{}}
	for _, artifact := range artifacts {
		result.Files++
		result.Issues = append(result.Issues, lintCompanion(artifact)...)
	}
	return result, nil
}

func lintCompanion(artifact catalog.Artifact) []Issue {
	issue := func(rule, message string) Issue {
		return Issue{Slug: artifact.Slug, Path: artifact.DocsPath, Rule: rule, Message: message}
	}

	data, err := os.ReadFile(artifact.DocsPath)
	if err != nil {
		return []Issue{issue(RuleMissingDocs, "no companion doc; description will fall back")}
	}
	content := strings.TrimSpace(string(data))

	var issues []Issue
	body := content
	if strings.HasPrefix(content, frontmatter.Delimiter) {
		parts := strings.SplitN(content, frontmatter.Delimiter, 3)
		if len(parts) < 3 {
			issues = append(issues, issue(RuleUnterminatedFront, "frontmatter opened but never closed"))
		} else {
			var fields map[string]any
			if err := yaml.Unmarshal([]byte(parts[1]), &fields); err != nil {
				issues = append(issues, issue(RuleInvalidFront, "frontmatter is not valid YAML"))
			} else {
				issues = append(issues, lintFields(fields, issue)...)
				body = strings.TrimSpace(parts[2])
			}
		}
	}

	issues = append(issues, lintBody(body, issue)...)
	return issues
}

func lintFields(fields map[string]any, issue func(rule, message string) Issue) []Issue {
	var issues []Issue
	if v, ok := fields["category"]; ok {
		if _, isString := v.(string); !isString {
			issues = append(issues, issue(RuleInvalidCategory, "category must be a string"))
		}
	}
	if v, ok := fields["tags"]; ok {
		if _, isSeq := v.([]any); !isSeq {
			issues = append(issues, issue(RuleInvalidTags, "tags must be a sequence"))
		}
	}
	return issues
}

// lintBody inspects the Markdown structure: a doc whose body has no
// paragraph text cannot feed the explicit description tier.
func lintBody(body string, issue func(rule, message string) Issue) []Issue {
	if !hasDescriptionLine(body) {
		if hasHeadings(body) {
			return []Issue{issue(RuleHeadingsOnly, "body contains only headings; add a descriptive paragraph")}
		}
		return []Issue{issue(RuleNoDescription, "body has no usable description line")}
	}
	return nil
}

func hasDescriptionLine(body string) bool {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") {
			return true
		}
	}
	return false
}

func hasHeadings(body string) bool {
	doc := markdown.Parser().Parse(text.NewReader([]byte(body)))
	found := false
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindHeading {
			found = true
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return found
}
