// Package colophon gathers recent commit history for the site repository
// and serializes it for downstream colophon-page assembly. Rendering the
// page itself is someone else's job.
package colophon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Commit is one history entry, shaped for the colophon page.
type Commit struct {
	Hash      string `json:"hash"`
	ShortHash string `json:"short_hash"`
	Author    string `json:"author"`
	Date      string `json:"date"`
	Message   string `json:"message"`
}

var errStopIteration = errors.New("stop iteration")

// Gather returns up to limit non-merge commits from the repository at
// repoPath, newest first.
func Gather(repoPath string, limit int) ([]Commit, error) {
	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", repoPath, err)
	}

	iter, err := repo.Log(&git.LogOptions{})
	if err != nil {
		return nil, fmt.Errorf("read git log: %w", err)
	}
	defer iter.Close()

	commits := make([]Commit, 0, limit)
	err = iter.ForEach(func(c *object.Commit) error {
		if c.NumParents() > 1 {
			return nil
		}
		commits = append(commits, Commit{
			Hash:      c.Hash.String(),
			ShortHash: c.Hash.String()[:7],
			Author:    c.Author.Name,
			Date:      c.Author.When.Format("2006-01-02 15:04:05 -0700"),
			Message:   firstLine(c.Message),
		})
		if len(commits) >= limit {
			return errStopIteration
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopIteration) {
		return nil, fmt.Errorf("iterate git log: %w", err)
	}
	return commits, nil
}

// Write serializes commits as pretty-printed JSON, replacing any prior file.
func Write(path string, commits []Commit) error {
	if commits == nil {
		commits = []Commit{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(commits); err != nil {
		return fmt.Errorf("encode colophon: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write colophon %s: %w", path, err)
	}
	return nil
}

func firstLine(message string) string {
	for i := 0; i < len(message); i++ {
		if message[i] == '\n' {
			return message[:i]
		}
	}
	return message
}
