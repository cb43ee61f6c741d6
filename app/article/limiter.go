package article

import "sort"

// LimitResult is the outcome of limit enforcement. Articles holds the
// canonical persisted order: heroes, then columns, then the regular pool.
type LimitResult struct {
	Articles  []Article
	HeroIDs   []string
	ColumnIDs []string
}

// Limiter caps the number of hero and column articles, demoting overflow
// back to the regular pool.
type Limiter struct{}

func NewLimiter() *Limiter {
	return &Limiter{}
}

func (l *Limiter) Run(articles []Article, maxHeroes, maxColumns int) LimitResult {
	if maxHeroes < 0 {
		maxHeroes = 0
	}
	if maxColumns < 0 {
		maxColumns = 0
	}

	var heroes, columns, regular []Article
	for _, a := range articles {
		switch {
		case a.IsHero:
			heroes = append(heroes, a)
		case a.IsColumn:
			columns = append(columns, a)
		default:
			regular = append(regular, a)
		}
	}

	// Most recent first; stable so ties keep their original relative order.
	sortByPublishedDesc(heroes)
	sortByPublishedDesc(columns)

	if len(heroes) > maxHeroes {
		demoted := heroes[maxHeroes:]
		heroes = heroes[:maxHeroes]
		for i := range demoted {
			demoted[i].IsHero = false
		}
		regular = append(regular, demoted...)
	}

	if len(columns) > maxColumns {
		demoted := columns[maxColumns:]
		columns = columns[:maxColumns]
		for i := range demoted {
			demoted[i].IsColumn = false
		}
		regular = append(regular, demoted...)
	}

	result := LimitResult{
		Articles:  make([]Article, 0, len(articles)),
		HeroIDs:   make([]string, 0, len(heroes)),
		ColumnIDs: make([]string, 0, len(columns)),
	}
	result.Articles = append(result.Articles, heroes...)
	result.Articles = append(result.Articles, columns...)
	result.Articles = append(result.Articles, regular...)
	for _, a := range heroes {
		result.HeroIDs = append(result.HeroIDs, a.ID)
	}
	for _, a := range columns {
		result.ColumnIDs = append(result.ColumnIDs, a.ID)
	}

	return result
}

func sortByPublishedDesc(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedDate.After(articles[j].PublishedDate)
	})
}
