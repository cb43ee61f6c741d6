package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/medaffairs/newsroom/app/article"
)

var _ CollectionRepository = (*FileCollectionRepository)(nil)

// FileCollectionRepository persists the article collection as an
// indented, human-readable JSON document.
type FileCollectionRepository struct {
	path       string
	maxHeroes  int
	maxColumns int
}

func NewFileCollectionRepository(path string, maxHeroes, maxColumns int) *FileCollectionRepository {
	return &FileCollectionRepository{
		path:       path,
		maxHeroes:  maxHeroes,
		maxColumns: maxColumns,
	}
}

// Load reads the persisted collection. A missing file yields an empty
// collection seeded with the configured limits.
func (r *FileCollectionRepository) Load() (Collection, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return r.emptyCollection(), nil
	}
	if err != nil {
		return Collection{}, fmt.Errorf("failed to read collection %s: %w", r.path, err)
	}

	var collection Collection
	if err := json.Unmarshal(data, &collection); err != nil {
		return Collection{}, fmt.Errorf("failed to parse collection %s: %w", r.path, err)
	}

	if collection.Articles == nil {
		collection.Articles = []article.Article{}
	}
	if collection.Limits.MaxHeroes == 0 {
		collection.Limits.MaxHeroes = r.maxHeroes
	}
	if collection.Limits.MaxColumns == 0 {
		collection.Limits.MaxColumns = r.maxColumns
	}

	return collection, nil
}

// Save rewrites the collection in full. The write is atomic; on failure
// the previous file is left untouched.
func (r *FileCollectionRepository) Save(collection Collection) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}

	return WriteFileAtomic(r.path, append(data, '\n'))
}

func (r *FileCollectionRepository) emptyCollection() Collection {
	return Collection{
		Articles: []article.Article{},
		Heroes:   []string{},
		Columns:  []string{},
		Limits: Limits{
			MaxHeroes:  r.maxHeroes,
			MaxColumns: r.maxColumns,
		},
	}
}
