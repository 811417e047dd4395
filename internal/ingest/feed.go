package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmcdole/gofeed"
)

// FeedSource reads comments from an RSS/Atom feed: one comment per item,
// preferring the item description over the title. Useful for pulling a
// forum or subreddit feed straight into an analysis run.
type FeedSource struct {
	parser *gofeed.Parser
}

// NewFeedSource creates a new feed source
func NewFeedSource() *FeedSource {
	return &FeedSource{
		parser: gofeed.NewParser(),
	}
}

// Name returns the source name
func (s *FeedSource) Name() string { return "feed" }

// CanHandle accepts http(s) URLs and local .xml/.rss/.atom files
func (s *FeedSource) CanHandle(ref string) bool {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return true
	}
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".xml", ".rss", ".atom":
		return true
	}
	return false
}

// Read fetches or opens the feed and normalizes its items into comments
func (s *FeedSource) Read(ctx context.Context, ref string) ([]string, error) {
	var feed *gofeed.Feed
	var err error

	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		feed, err = s.parser.ParseURLWithContext(ref, ctx)
	} else {
		var file *os.File
		file, err = os.Open(ref)
		if err != nil {
			return nil, fmt.Errorf("open feed: %w", err)
		}
		defer func() { _ = file.Close() }()
		feed, err = s.parser.Parse(file)
	}
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	var comments []string
	for _, item := range feed.Items {
		text := strings.TrimSpace(item.Description)
		if text == "" {
			text = strings.TrimSpace(item.Title)
		}
		if text == "" {
			continue
		}
		// Feed bodies may contain embedded newlines; each item stays one comment
		text = strings.Join(strings.Fields(text), " ")
		comments = append(comments, text)
	}

	return comments, nil
}
