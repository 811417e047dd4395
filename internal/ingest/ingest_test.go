package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitComments(t *testing.T) {
	block := "\n  first comment  \n\n second \n\t\nthird\n"

	comments := SplitComments(block)
	if len(comments) != 3 {
		t.Fatalf("Expected 3 comments, got %d: %v", len(comments), comments)
	}
	if comments[0] != "first comment" || comments[1] != "second" || comments[2] != "third" {
		t.Errorf("Unexpected comments: %v", comments)
	}
}

func TestSplitComments_Empty(t *testing.T) {
	if comments := SplitComments("  \n \n"); comments != nil {
		t.Errorf("Expected nil for blank input, got %v", comments)
	}
}

func TestTextSource_ReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comments.txt")
	if err := os.WriteFile(path, []byte("one\n\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}

	source := NewTextSource()
	comments, err := source.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(comments) != 2 {
		t.Errorf("Expected 2 comments, got %d", len(comments))
	}
}

func TestCSVSource_Read(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "comments.csv")
	data := "id,comment\n1, CeraVe is great \n2,\n3,broke me out\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	source := NewCSVSource()
	if !source.CanHandle(path) {
		t.Error("Expected CSVSource to handle .csv files")
	}

	comments, err := source.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d: %v", len(comments), comments)
	}
	if comments[0] != "CeraVe is great" {
		t.Errorf("Expected trimmed comment, got %q", comments[0])
	}
}

func TestCSVSource_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(path, []byte("id,body\n1,hello\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewCSVSource().Read(context.Background(), path); err == nil {
		t.Error("Expected error for missing comment column")
	}
}

func TestFeedSource_ReadLocalFile(t *testing.T) {
	feedXML := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Skincare Forum</title>
    <item>
      <title>First post</title>
      <description>The Ordinary niacinamide
shrunk my pores</description>
    </item>
    <item>
      <title>Title only post</title>
    </item>
  </channel>
</rss>`

	dir := t.TempDir()
	path := filepath.Join(dir, "feed.xml")
	if err := os.WriteFile(path, []byte(feedXML), 0644); err != nil {
		t.Fatal(err)
	}

	source := NewFeedSource()
	if !source.CanHandle(path) {
		t.Error("Expected FeedSource to handle .xml files")
	}

	comments, err := source.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d: %v", len(comments), comments)
	}
	if comments[0] != "The Ordinary niacinamide shrunk my pores" {
		t.Errorf("Expected item body collapsed to one line, got %q", comments[0])
	}
	if comments[1] != "Title only post" {
		t.Errorf("Expected title fallback, got %q", comments[1])
	}
}

func TestRegistry_Find(t *testing.T) {
	registry := NewRegistry()

	if got := registry.Find("data.csv").Name(); got != "csv" {
		t.Errorf("Expected csv source for .csv, got %s", got)
	}
	if got := registry.Find("https://example.com/feed").Name(); got != "feed" {
		t.Errorf("Expected feed source for URL, got %s", got)
	}
	if got := registry.Find("comments.txt").Name(); got != "text" {
		t.Errorf("Expected text fallback, got %s", got)
	}
	if got := registry.Find("-").Name(); got != "text" {
		t.Errorf("Expected text source for stdin, got %s", got)
	}
}
