package store

import (
	"github.com/medaffairs/newsroom/app/article"
)

type CollectionRepository interface {
	Load() (Collection, error)
	Save(collection Collection) error
}

type ArchiveRepository interface {
	Load() ([]article.ArchiveEntry, error)
	Save(entries []article.ArchiveEntry) error
}
