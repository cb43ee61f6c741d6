package article

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/medaffairs/newsroom/app/source"
)

// HTMLNormalizer converts raw HTML into markdown-flavoured plain text.
type HTMLNormalizer interface {
	Run(html string) (string, error)
}

// Builder maps one raw upstream item into a canonical Article.
type Builder struct {
	normalizer    HTMLNormalizer
	summaryLength int
}

func NewBuilder(normalizer HTMLNormalizer, summaryLength int) *Builder {
	if summaryLength <= 0 {
		summaryLength = 200
	}
	return &Builder{
		normalizer:    normalizer,
		summaryLength: summaryLength,
	}
}

// Run builds a single Article. An error means the item could not be
// converted at all; callers log it and continue with the rest of the
// batch, a bad item never aborts a run.
func (b *Builder) Run(item source.Item, generatedTitle string) (Article, error) {
	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = "Untitled"
	}

	content, err := b.normalizer.Run(item.ContentHTML)
	if err != nil {
		return Article{}, fmt.Errorf("failed to normalize content: %w", err)
	}

	now := time.Now().UTC()

	a := Article{
		ID:            GenerateID(title, item.URL),
		Title:         title,
		URL:           item.URL,
		Content:       content,
		Summary:       ExtractSummary(content, b.summaryLength),
		PublishedDate: b.parsePublished(item, now),
		FetchedDate:   now,
		Tags:          extractTags(item.Categories),
		Source:        item.Origin,
		Author:        item.Author,
		Image:         item.Image,
	}

	if a.Source == "" {
		a.Source = "Unknown"
	}
	if a.Author == "" {
		a.Author = "Unknown"
	}
	if generatedTitle != "" {
		a.GeneratedTitle = &generatedTitle
	}

	return a, nil
}

// parsePublished accepts either an epoch value or a free-form date string.
// Anything unparseable falls back to the current time.
func (b *Builder) parsePublished(item source.Item, now time.Time) time.Time {
	if item.PublishedUnix > 0 {
		return time.Unix(item.PublishedUnix, 0).UTC()
	}

	if raw := strings.TrimSpace(item.PublishedRaw); raw != "" {
		parsed, err := dateparse.ParseAny(raw)
		if err == nil {
			return parsed.UTC()
		}
		slog.Warn("Unparseable published date, using current time", "value", raw, "error", err)
	}

	return now
}

// extractTags collects the trailing segment of taxonomy strings shaped
// like ".../label/<tag>". Non-conforming strings are ignored.
func extractTags(categories []string) []string {
	tags := []string{}
	for _, category := range categories {
		if idx := strings.LastIndex(category, "/label/"); idx >= 0 {
			tag := category[idx+len("/label/"):]
			if tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
