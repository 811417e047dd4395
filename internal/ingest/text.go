package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
)

// TextSource reads newline-delimited comments from a plain file or stdin
type TextSource struct{}

// NewTextSource creates a new plain-text source
func NewTextSource() *TextSource {
	return &TextSource{}
}

// Name returns the source name
func (s *TextSource) Name() string { return "text" }

// CanHandle accepts anything; TextSource is the registry fallback
func (s *TextSource) CanHandle(ref string) bool { return true }

// Read reads comments from the file at ref, or from stdin when ref is "-"
func (s *TextSource) Read(ctx context.Context, ref string) ([]string, error) {
	var reader io.Reader
	if ref == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(ref)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer func() { _ = file.Close() }()
		reader = file
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	return SplitComments(string(data)), nil
}
