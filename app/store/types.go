package store

import (
	"time"

	"github.com/medaffairs/newsroom/app/article"
)

type Limits struct {
	MaxHeroes  int `json:"max_heroes"`
	MaxColumns int `json:"max_columns"`
}

// Collection is the durable, reconciled article record set used as the
// source of truth between runs. It is read once at the start of a run
// and fully rewritten at the end.
type Collection struct {
	Articles    []article.Article `json:"articles"`
	Heroes      []string          `json:"heroes"`
	Columns     []string          `json:"columns"`
	LastUpdated *time.Time        `json:"last_updated"`
	Limits      Limits            `json:"limits"`
}
