package article

import (
	"fmt"
	"strings"
	"time"
)

// ArchiveStore persists the flat article array maintained by the
// webhook path.
type ArchiveStore interface {
	Load() ([]ArchiveEntry, error)
	Save(entries []ArchiveEntry) error
}

// Appender validates a single submitted article and prepends it to the
// persisted archive array. No categorization or limit logic applies on
// this path.
type Appender struct {
	store ArchiveStore
}

func NewAppender(store ArchiveStore) *Appender {
	return &Appender{store: store}
}

func (ap *Appender) Run(sub Submission) (ArchiveEntry, error) {
	sub.Title = strings.TrimSpace(sub.Title)
	sub.URL = strings.TrimSpace(sub.URL)

	if sub.Title == "" {
		return ArchiveEntry{}, &ValidationError{Field: "title"}
	}
	if sub.URL == "" {
		return ArchiveEntry{}, &ValidationError{Field: "url"}
	}

	entries, err := ap.store.Load()
	if err != nil {
		return ArchiveEntry{}, fmt.Errorf("failed to load archive: %w", err)
	}

	for _, existing := range entries {
		if existing.URL == sub.URL {
			return ArchiveEntry{}, fmt.Errorf("%w: %s", ErrDuplicate, sub.URL)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)

	entry := ArchiveEntry{
		Title:       sub.Title,
		SnappyTitle: sub.SnappyTitle,
		URL:         sub.URL,
		Author:      sub.Author,
		Date:        sub.Date,
		Category:    sub.Category,
		CoverImage:  sub.CoverImage,
		ProcessedAt: now,
	}
	if entry.Author == "" {
		entry.Author = "Unknown"
	}
	if entry.Date == "" {
		entry.Date = now
	}
	if entry.Category == "" {
		entry.Category = "general"
	}

	// Most recent first.
	entries = append([]ArchiveEntry{entry}, entries...)

	if err := ap.store.Save(entries); err != nil {
		return ArchiveEntry{}, fmt.Errorf("failed to save archive: %w", err)
	}

	return entry, nil
}
