// Package ingest normalizes comment input from several source formats into
// plain comment lines: trimmed, empty lines discarded, order preserved.
package ingest

import (
	"context"
	"strings"
)

// Source reads comments from one input format
type Source interface {
	// Name returns the source name
	Name() string

	// CanHandle checks if this source can handle the given input reference
	// (a file path, a URL, or "-" for stdin)
	CanHandle(ref string) bool

	// Read reads and normalizes comments from the input
	Read(ctx context.Context, ref string) ([]string, error)
}

// Registry selects a source for an input reference
type Registry struct {
	sources  []Source
	fallback Source
}

// NewRegistry creates a registry with the built-in sources registered
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(NewCSVSource())
	r.Register(NewFeedSource())
	r.fallback = NewTextSource()
	return r
}

// Register registers an additional source
func (r *Registry) Register(s Source) {
	r.sources = append(r.sources, s)
}

// Find returns the first source that can handle ref, or the plain-text
// fallback
func (r *Registry) Find(ref string) Source {
	for _, s := range r.sources {
		if s.CanHandle(ref) {
			return s
		}
	}
	return r.fallback
}

// SplitComments splits a raw text block into normalized comment lines
func SplitComments(block string) []string {
	var comments []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		comments = append(comments, line)
	}
	return comments
}
