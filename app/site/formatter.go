package site

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/araddon/dateparse"
	"github.com/medaffairs/newsroom/app/article"
	"github.com/medaffairs/newsroom/app/store"
)

// Formatter produces the site document from the article collection. Two
// strategies exist: FormatCollection trusts the precomputed hero/column
// flags, FormatArchive derives heroes and buckets from a flat list.
type Formatter struct {
	categorizer *Categorizer
	heroesCount int
	columnSize  int
}

func NewFormatter(categorizer *Categorizer, heroesCount, columnSize int) *Formatter {
	if heroesCount <= 0 {
		heroesCount = 3
	}
	if columnSize <= 0 {
		columnSize = 10
	}
	return &Formatter{
		categorizer: categorizer,
		heroesCount: heroesCount,
		columnSize:  columnSize,
	}
}

// FormatCollection uses the hero/column flags as bucket membership.
// Articles without a resolvable URL stay out of the site document.
func (f *Formatter) FormatCollection(collection store.Collection) Document {
	doc := f.emptyDocument()

	for _, a := range collection.Articles {
		if a.URL == "" {
			continue
		}
		switch {
		case a.IsHero:
			doc.Heroes = append(doc.Heroes, projectArticle(a))
		case a.IsColumn:
			bucket := f.categorizer.Run(a)
			doc.Columns[bucket] = append(doc.Columns[bucket], projectArticle(a))
		}
	}

	f.capColumns(&doc)
	return doc
}

// FormatArchive derives the document from a flat article list: drop
// URL-less articles, sort by publish date descending, promote the most
// recent to heroes (preferring ones with an image), categorize the rest.
func (f *Formatter) FormatArchive(articles []article.Article) Document {
	doc := f.emptyDocument()

	eligible := make([]article.Article, 0, len(articles))
	for _, a := range articles {
		if a.URL != "" {
			eligible = append(eligible, a)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].PublishedDate.After(eligible[j].PublishedDate)
	})

	var remaining []article.Article
	for _, a := range eligible {
		if len(doc.Heroes) < f.heroesCount && a.Image != "" {
			doc.Heroes = append(doc.Heroes, projectArticle(a))
		} else {
			remaining = append(remaining, a)
		}
	}
	// Not enough illustrated articles: fill hero slots with the most
	// recent of the rest.
	for len(doc.Heroes) < f.heroesCount && len(remaining) > 0 {
		doc.Heroes = append(doc.Heroes, projectArticle(remaining[0]))
		remaining = remaining[1:]
	}

	for _, a := range remaining {
		bucket := f.categorizer.Run(a)
		doc.Columns[bucket] = append(doc.Columns[bucket], projectArticle(a))
	}

	f.capColumns(&doc)
	return doc
}

// Write persists the document as the full-replace site artifact.
func Write(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal site document: %w", err)
	}
	return store.WriteFileAtomic(path, append(data, '\n'))
}

func (f *Formatter) emptyDocument() Document {
	doc := Document{
		LastUpdated: time.Now().UnixMilli(),
		Heroes:      []Entry{},
		Columns:     make(map[string][]Entry),
	}
	for _, bucket := range f.categorizer.Buckets() {
		doc.Columns[bucket] = []Entry{}
	}
	return doc
}

func (f *Formatter) capColumns(doc *Document) {
	for bucket, entries := range doc.Columns {
		if len(entries) > f.columnSize {
			doc.Columns[bucket] = entries[:f.columnSize]
		}
	}
}

func projectArticle(a article.Article) Entry {
	return Entry{
		ID:        a.ID,
		Title:     a.DisplayTitle(),
		URL:       a.URL,
		Source:    a.Source,
		Published: a.PublishedDate.UnixMilli(),
		Image:     a.Image,
	}
}

// FromArchiveEntries adapts webhook archive entries to articles so the
// derive-on-format strategy can publish straight from the flat archive.
func FromArchiveEntries(entries []article.ArchiveEntry) []article.Article {
	articles := make([]article.Article, 0, len(entries))
	for _, e := range entries {
		a := article.Article{
			ID:     article.GenerateID(e.Title, e.URL),
			Title:  e.Title,
			URL:    e.URL,
			Source: e.Author,
			Image:  e.CoverImage,
		}
		if e.SnappyTitle != "" {
			snappy := e.SnappyTitle
			a.GeneratedTitle = &snappy
		}
		if t, err := dateparse.ParseAny(e.Date); err == nil {
			a.PublishedDate = t
		} else {
			a.PublishedDate = time.Now()
		}
		articles = append(articles, a)
	}
	return articles
}
