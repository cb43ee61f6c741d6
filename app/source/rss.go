package source

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

var _ Source = (*RSSSource)(nil)

// RSSSource fetches a plain RSS/Atom feed and normalizes its items.
type RSSSource struct {
	config    *Config
	client    *http.Client
	userAgent string
	parser    *gofeed.Parser
}

func NewRSSSource(config *Config, client *http.Client, userAgent string) *RSSSource {
	return &RSSSource{
		config:    config,
		client:    client,
		userAgent: userAgent,
		parser:    gofeed.NewParser(),
	}
}

func (s *RSSSource) Name() string {
	return s.config.Name
}

func (s *RSSSource) Fetch(ctx context.Context) ([]Item, error) {
	timeout := time.Duration(s.config.Settings.Timeout) * time.Second
	data, err := fetchBytes(ctx, s.client, s.config.URL, s.config.Token, s.userAgent,
		"application/rss+xml, application/atom+xml, application/xml, text/xml", timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	feed, err := s.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -s.config.Settings.DaysBack)

	items := make([]Item, 0, len(feed.Items))
	for _, raw := range feed.Items {
		item := s.normalizeItem(raw, feed.Title)
		if item.PublishedUnix > 0 && time.Unix(item.PublishedUnix, 0).Before(cutoff) {
			continue
		}
		items = append(items, item)
		if len(items) >= s.config.Settings.Limit {
			break
		}
	}

	return items, nil
}

func (s *RSSSource) normalizeItem(raw *gofeed.Item, feedTitle string) Item {
	item := Item{
		Title:       raw.Title,
		URL:         raw.Link,
		ContentHTML: cmp.Or(raw.Content, raw.Description),
		Origin:      feedTitle,
		Categories:  raw.Categories,
	}

	if raw.PublishedParsed != nil {
		item.PublishedUnix = raw.PublishedParsed.Unix()
	} else {
		item.PublishedRaw = raw.Published
	}

	if raw.Author != nil {
		item.Author = raw.Author.Name
	}

	if raw.Image != nil {
		item.Image = raw.Image.URL
	}
	if item.Image == "" {
		for _, enclosure := range raw.Enclosures {
			if enclosure != nil && strings.HasPrefix(enclosure.Type, "image/") {
				item.Image = enclosure.URL
				break
			}
		}
	}

	return item
}
