package article

import (
	"testing"
	"time"
)

func datedArticle(id string, daysAgo int, hero, column bool) Article {
	return Article{
		ID:            id,
		URL:           "http://x/" + id,
		PublishedDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo),
		IsHero:        hero,
		IsColumn:      column,
	}
}

func TestLimiter_Run_WithinLimits(t *testing.T) {
	limiter := NewLimiter()

	articles := []Article{
		datedArticle("h1", 0, true, false),
		datedArticle("c1", 1, false, true),
		datedArticle("r1", 2, false, false),
	}

	result := limiter.Run(articles, 3, 6)

	if len(result.HeroIDs) != 1 || result.HeroIDs[0] != "h1" {
		t.Errorf("Unexpected hero ids: %v", result.HeroIDs)
	}
	if len(result.ColumnIDs) != 1 || result.ColumnIDs[0] != "c1" {
		t.Errorf("Unexpected column ids: %v", result.ColumnIDs)
	}
	if len(result.Articles) != 3 {
		t.Errorf("Expected all 3 articles retained, got %d", len(result.Articles))
	}
}

func TestLimiter_Run_DemotesExcessHeroes(t *testing.T) {
	limiter := NewLimiter()

	// 5 heroes with distinct recent dates, cap of 3.
	articles := []Article{
		datedArticle("h5", 4, true, false),
		datedArticle("h1", 0, true, false),
		datedArticle("h3", 2, true, false),
		datedArticle("h2", 1, true, false),
		datedArticle("h4", 3, true, false),
	}

	result := limiter.Run(articles, 3, 6)

	if len(result.HeroIDs) != 3 {
		t.Fatalf("Expected 3 heroes, got %d", len(result.HeroIDs))
	}
	for i, expected := range []string{"h1", "h2", "h3"} {
		if result.HeroIDs[i] != expected {
			t.Errorf("Hero %d: expected %s, got %s", i, expected, result.HeroIDs[i])
		}
	}

	// The two oldest are demoted into the regular pool with flags cleared.
	demoted := map[string]bool{"h4": false, "h5": false}
	for _, a := range result.Articles {
		if _, ok := demoted[a.ID]; ok {
			demoted[a.ID] = true
			if a.IsHero {
				t.Errorf("Demoted article %s still flagged as hero", a.ID)
			}
		}
	}
	for id, seen := range demoted {
		if !seen {
			t.Errorf("Demoted article %s missing from output", id)
		}
	}
	if len(result.Articles) != 5 {
		t.Errorf("Demotion must not drop articles, got %d of 5", len(result.Articles))
	}
}

func TestLimiter_Run_DemotesExcessColumns(t *testing.T) {
	limiter := NewLimiter()

	var articles []Article
	for i := 0; i < 8; i++ {
		articles = append(articles, datedArticle(string(rune('a'+i)), i, false, true))
	}

	result := limiter.Run(articles, 3, 6)

	if len(result.ColumnIDs) != 6 {
		t.Fatalf("Expected 6 columns after enforcement, got %d", len(result.ColumnIDs))
	}
	columnSet := make(map[string]bool)
	for _, id := range result.ColumnIDs {
		columnSet[id] = true
	}
	for _, a := range result.Articles {
		if a.IsColumn && !columnSet[a.ID] {
			t.Errorf("Article %s flagged as column but absent from column ids", a.ID)
		}
		if !a.IsColumn && columnSet[a.ID] {
			t.Errorf("Article %s in column ids but flag cleared", a.ID)
		}
	}
}

func TestLimiter_Run_CanonicalOrder(t *testing.T) {
	limiter := NewLimiter()

	articles := []Article{
		datedArticle("r1", 0, false, false),
		datedArticle("c1", 1, false, true),
		datedArticle("h1", 2, true, false),
	}

	result := limiter.Run(articles, 3, 6)

	expected := []string{"h1", "c1", "r1"}
	for i, id := range expected {
		if result.Articles[i].ID != id {
			t.Errorf("Position %d: expected %s, got %s", i, id, result.Articles[i].ID)
		}
	}
}

func TestLimiter_Run_StableTieOrder(t *testing.T) {
	limiter := NewLimiter()

	// Same publish date: original relative order must hold.
	same := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	articles := []Article{
		{ID: "first", PublishedDate: same, IsHero: true},
		{ID: "second", PublishedDate: same, IsHero: true},
		{ID: "third", PublishedDate: same, IsHero: true},
	}

	result := limiter.Run(articles, 2, 6)

	if result.HeroIDs[0] != "first" || result.HeroIDs[1] != "second" {
		t.Errorf("Tie-break should keep original order, got %v", result.HeroIDs)
	}
}

func TestLimiter_Run_EmptyInput(t *testing.T) {
	limiter := NewLimiter()

	result := limiter.Run(nil, 3, 6)

	if len(result.Articles) != 0 || len(result.HeroIDs) != 0 || len(result.ColumnIDs) != 0 {
		t.Errorf("Empty input should yield empty result, got %+v", result)
	}
}
