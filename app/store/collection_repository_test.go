package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/medaffairs/newsroom/app/article"
)

func TestFileCollectionRepository_Load_MissingFile(t *testing.T) {
	repo := NewFileCollectionRepository(filepath.Join(t.TempDir(), "articles.json"), 3, 6)

	collection, err := repo.Load()
	if err != nil {
		t.Fatalf("Missing file should not error: %v", err)
	}

	if len(collection.Articles) != 0 {
		t.Errorf("Expected empty articles, got %d", len(collection.Articles))
	}
	if collection.Limits.MaxHeroes != 3 || collection.Limits.MaxColumns != 6 {
		t.Errorf("Expected configured limits, got %+v", collection.Limits)
	}
	if collection.LastUpdated != nil {
		t.Errorf("Expected nil last_updated, got %v", collection.LastUpdated)
	}
}

func TestFileCollectionRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "articles.json")
	repo := NewFileCollectionRepository(path, 3, 6)

	manual := "Pinned"
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	collection := Collection{
		Articles: []article.Article{
			{ID: "id1", Title: "One", ManualTitle: &manual, URL: "http://x/1", IsHero: true, PublishedDate: now},
			{ID: "id2", Title: "Two", URL: "http://x/2", PublishedDate: now},
		},
		Heroes:      []string{"id1"},
		Columns:     []string{},
		LastUpdated: &now,
		Limits:      Limits{MaxHeroes: 3, MaxColumns: 6},
	}

	if err := repo.Save(collection); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.Articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(loaded.Articles))
	}
	if loaded.Articles[0].ManualTitle == nil || *loaded.Articles[0].ManualTitle != manual {
		t.Errorf("Manual title lost in round trip: %v", loaded.Articles[0].ManualTitle)
	}
	if !loaded.Articles[0].IsHero {
		t.Error("Hero flag lost in round trip")
	}
	if len(loaded.Heroes) != 1 || loaded.Heroes[0] != "id1" {
		t.Errorf("Hero index lost: %v", loaded.Heroes)
	}
	if loaded.LastUpdated == nil || !loaded.LastUpdated.Equal(now) {
		t.Errorf("last_updated lost: %v", loaded.LastUpdated)
	}
}

func TestFileCollectionRepository_Save_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "articles.json")
	repo := NewFileCollectionRepository(path, 3, 6)

	if err := repo.Save(Collection{}); err != nil {
		t.Fatalf("Save should create parent directories: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected file at %s: %v", path, err)
	}
}

func TestFileCollectionRepository_Save_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileCollectionRepository(filepath.Join(dir, "articles.json"), 3, 6)

	if err := repo.Save(Collection{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("Expected only the collection file, found %v", names)
	}
}

func TestFileCollectionRepository_Load_HonorsPersistedLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articles.json")
	repo := NewFileCollectionRepository(path, 3, 6)

	collection := Collection{
		Limits: Limits{MaxHeroes: 5, MaxColumns: 12},
	}
	if err := repo.Save(collection); err != nil {
		t.Fatal(err)
	}

	loaded, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Limits.MaxHeroes != 5 || loaded.Limits.MaxColumns != 12 {
		t.Errorf("Persisted limits should win over defaults, got %+v", loaded.Limits)
	}
}
