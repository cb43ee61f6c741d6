package article

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"
)

// Article is the canonical record produced by the Builder and persisted in
// the article collection. JSON field names match the historical on-disk
// document so existing collections remain readable.
type Article struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	ManualTitle    *string   `json:"manual_title"`
	GeneratedTitle *string   `json:"generated_title,omitempty"`
	URL            string    `json:"url"`
	Content        string    `json:"content"`
	Summary        string    `json:"summary"`
	PublishedDate  time.Time `json:"published_date"`
	FetchedDate    time.Time `json:"fetched_date"`
	Tags           []string  `json:"tags"`
	Source         string    `json:"source"`
	Author         string    `json:"author"`
	Image          string    `json:"image,omitempty"`
	IsHero         bool      `json:"is_hero"`
	IsColumn       bool      `json:"is_column"`
}

// DisplayTitle resolves the title to show, in priority order:
// manual override, generated headline, original title.
func (a Article) DisplayTitle() string {
	if a.ManualTitle != nil && strings.TrimSpace(*a.ManualTitle) != "" {
		return *a.ManualTitle
	}
	if a.GeneratedTitle != nil && strings.TrimSpace(*a.GeneratedTitle) != "" {
		return *a.GeneratedTitle
	}
	if a.Title != "" {
		return a.Title
	}
	return "Untitled"
}

// GenerateID derives the stable article identifier from title and URL.
// The truncated hash is collision-tolerant only up to its 48 bits; it is a
// reconciliation key, not a guaranteed-unique identifier.
func GenerateID(title, url string) string {
	sum := md5.Sum([]byte(title + url))
	return hex.EncodeToString(sum[:])[:12]
}

// Submission is a single article offered through the webhook path.
type Submission struct {
	Title       string `json:"title"`
	SnappyTitle string `json:"snappy_title"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	CoverImage  string `json:"cover_image"`
}

// ArchiveEntry is the persisted form of an accepted Submission. The flat
// archive array holds these most-recent-first.
type ArchiveEntry struct {
	Title       string `json:"title"`
	SnappyTitle string `json:"snappy_title"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	CoverImage  string `json:"cover_image"`
	ProcessedAt string `json:"processed_at"`
}
