package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CSVSource reads comments from a CSV file with a "comment" header column
// (a "text" column is accepted as an alias)
type CSVSource struct{}

// NewCSVSource creates a new CSV source
func NewCSVSource() *CSVSource {
	return &CSVSource{}
}

// Name returns the source name
func (s *CSVSource) Name() string { return "csv" }

// CanHandle checks the file extension
func (s *CSVSource) CanHandle(ref string) bool {
	return strings.ToLower(filepath.Ext(ref)) == ".csv"
}

// Read reads and normalizes comments from the CSV file at ref
func (s *CSVSource) Read(ctx context.Context, ref string) ([]string, error) {
	file, err := os.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("empty csv")
	}

	// Locate the comment column in the header row
	col := -1
	for i, header := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(header))
		if name == "comment" || name == "text" {
			col = i
			break
		}
	}
	if col == -1 {
		return nil, errors.New("csv must contain a 'comment' or 'text' header column")
	}

	var comments []string
	for _, row := range rows[1:] {
		if col >= len(row) {
			continue
		}
		comment := strings.TrimSpace(row[col])
		if comment != "" {
			comments = append(comments, comment)
		}
	}

	return comments, nil
}
