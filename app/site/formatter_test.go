package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/medaffairs/newsroom/app/article"
	"github.com/medaffairs/newsroom/app/store"
)

func siteArticle(id string, daysAgo int, opts func(*article.Article)) article.Article {
	a := article.Article{
		ID:            id,
		Title:         "Article " + id,
		URL:           "http://x/" + id,
		Source:        "Example",
		PublishedDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo),
	}
	if opts != nil {
		opts(&a)
	}
	return a
}

func assertPartition(t *testing.T, doc Document) {
	t.Helper()
	heroIDs := make(map[string]bool)
	for _, h := range doc.Heroes {
		heroIDs[h.ID] = true
	}
	for bucket, entries := range doc.Columns {
		for _, e := range entries {
			if heroIDs[e.ID] {
				t.Errorf("Article %s appears both as hero and in column %q", e.ID, bucket)
			}
		}
	}
}

func TestFormatter_FormatCollection_FlagDriven(t *testing.T) {
	f := NewFormatter(NewCategorizer(), 3, 10)

	collection := store.Collection{
		Articles: []article.Article{
			siteArticle("h1", 0, func(a *article.Article) { a.IsHero = true }),
			siteArticle("c1", 1, func(a *article.Article) { a.IsColumn = true; a.Title = "AI platform launch" }),
			siteArticle("c2", 2, func(a *article.Article) { a.IsColumn = true; a.Title = "An opinion piece" }),
			siteArticle("r1", 3, nil),
		},
	}

	doc := f.FormatCollection(collection)

	if len(doc.Heroes) != 1 || doc.Heroes[0].ID != "h1" {
		t.Errorf("Unexpected heroes: %+v", doc.Heroes)
	}
	if len(doc.Columns["tech"]) != 1 || doc.Columns["tech"][0].ID != "c1" {
		t.Errorf("Unexpected tech column: %+v", doc.Columns["tech"])
	}
	if len(doc.Columns["opinion"]) != 1 || doc.Columns["opinion"][0].ID != "c2" {
		t.Errorf("Unexpected opinion column: %+v", doc.Columns["opinion"])
	}
	if len(doc.Columns["news"]) != 0 {
		t.Errorf("Regular articles must not join columns in flag-driven mode: %+v", doc.Columns["news"])
	}
	assertPartition(t, doc)
}

func TestFormatter_FormatCollection_DropsURLlessArticles(t *testing.T) {
	f := NewFormatter(NewCategorizer(), 3, 10)

	collection := store.Collection{
		Articles: []article.Article{
			siteArticle("h1", 0, func(a *article.Article) { a.IsHero = true; a.URL = "" }),
		},
	}

	doc := f.FormatCollection(collection)

	if len(doc.Heroes) != 0 {
		t.Errorf("Articles without URL must stay out of the site document: %+v", doc.Heroes)
	}
}

func TestFormatter_FormatArchive_HeroSelection(t *testing.T) {
	f := NewFormatter(NewCategorizer(), 3, 10)

	articles := []article.Article{
		siteArticle("a1", 0, nil),
		siteArticle("a2", 1, func(a *article.Article) { a.Image = "http://x/a2.jpg" }),
		siteArticle("a3", 2, nil),
		siteArticle("a4", 3, func(a *article.Article) { a.Image = "http://x/a4.jpg" }),
		siteArticle("a5", 4, nil),
	}

	doc := f.FormatArchive(articles)

	if len(doc.Heroes) != 3 {
		t.Fatalf("Expected 3 heroes, got %d", len(doc.Heroes))
	}
	// Illustrated articles take hero slots first; the most recent
	// remaining article fills the gap.
	heroIDs := []string{doc.Heroes[0].ID, doc.Heroes[1].ID, doc.Heroes[2].ID}
	if heroIDs[0] != "a2" || heroIDs[1] != "a4" || heroIDs[2] != "a1" {
		t.Errorf("Unexpected hero selection: %v", heroIDs)
	}
	assertPartition(t, doc)
}

func TestFormatter_FormatArchive_ColumnCap(t *testing.T) {
	f := NewFormatter(NewCategorizer(), 1, 2)

	var articles []article.Article
	for i := 0; i < 8; i++ {
		articles = append(articles, siteArticle(string(rune('a'+i)), i, nil))
	}

	doc := f.FormatArchive(articles)

	if len(doc.Columns["news"]) != 2 {
		t.Errorf("Expected news column capped at 2, got %d", len(doc.Columns["news"]))
	}
}

func TestFormatter_FormatArchive_EmptyInput(t *testing.T) {
	f := NewFormatter(NewCategorizer(), 3, 10)

	doc := f.FormatArchive(nil)

	if doc.LastUpdated == 0 {
		t.Error("Expected last_updated set")
	}
	if len(doc.Heroes) != 0 {
		t.Errorf("Expected no heroes, got %d", len(doc.Heroes))
	}
	for _, bucket := range []string{"news", "tech", "opinion"} {
		if entries, ok := doc.Columns[bucket]; !ok || entries == nil {
			t.Errorf("Bucket %q should exist and be an empty list", bucket)
		}
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "articles.json")
	f := NewFormatter(NewCategorizer(), 3, 10)

	doc := f.FormatArchive([]article.Article{siteArticle("a1", 0, nil)})
	if err := Write(path, doc); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected site file: %v", err)
	}

	var loaded Document
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Site document is not valid JSON: %v", err)
	}
	if len(loaded.Heroes) != 1 {
		t.Errorf("Expected 1 hero in written document, got %d", len(loaded.Heroes))
	}
}

func TestFromArchiveEntries(t *testing.T) {
	entries := []article.ArchiveEntry{
		{
			Title:       "A",
			SnappyTitle: "Snappy A",
			URL:         "http://x/a",
			Author:      "Writer",
			Date:        "2024-01-15T10:30:00Z",
			CoverImage:  "http://x/a.jpg",
		},
	}

	articles := FromArchiveEntries(entries)

	if len(articles) != 1 {
		t.Fatalf("Expected 1 article, got %d", len(articles))
	}
	a := articles[0]
	if a.DisplayTitle() != "Snappy A" {
		t.Errorf("Snappy title should become the generated title, got %q", a.DisplayTitle())
	}
	if a.Image != "http://x/a.jpg" {
		t.Errorf("Cover image lost: %q", a.Image)
	}
	if a.PublishedDate.IsZero() {
		t.Error("Date not parsed")
	}
}

func TestFromArchiveEntries_DateFormats(t *testing.T) {
	entries := []article.ArchiveEntry{
		{Title: "RFC3339", URL: "http://x/1", Date: "2024-06-01T12:00:00Z"},
		{Title: "Date only", URL: "http://x/2", Date: "2024-06-01"},
		{Title: "Unparseable", URL: "http://x/3", Date: "sometime last week"},
	}

	articles := FromArchiveEntries(entries)

	if got := articles[0].PublishedDate.Year(); got != 2024 {
		t.Errorf("RFC3339 date mangled, got year %d", got)
	}
	if got := articles[1].PublishedDate.Year(); got != 2024 {
		t.Errorf("Date-only string should parse, got year %d", got)
	}
	for i, a := range articles {
		if a.PublishedDate.UnixMilli() < 0 {
			t.Errorf("Entry %d projects a negative published timestamp", i)
		}
	}
	if time.Since(articles[2].PublishedDate) > time.Minute {
		t.Error("Unparseable date should fall back to now")
	}
}
