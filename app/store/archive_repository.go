package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/medaffairs/newsroom/app/article"
)

var _ ArchiveRepository = (*FileArchiveRepository)(nil)

// FileArchiveRepository persists the flat article array maintained by
// the webhook path, most recent entry first.
type FileArchiveRepository struct {
	path string
}

func NewFileArchiveRepository(path string) *FileArchiveRepository {
	return &FileArchiveRepository{path: path}
}

// Load reads the archive array. A missing or malformed file is treated
// as an empty archive so a damaged file never blocks new submissions.
func (r *FileArchiveRepository) Load() ([]article.ArchiveEntry, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []article.ArchiveEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read archive %s: %w", r.path, err)
	}

	var entries []article.ArchiveEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("Malformed archive file, starting with empty array", "path", r.path, "error", err)
		return []article.ArchiveEntry{}, nil
	}

	return entries, nil
}

func (r *FileArchiveRepository) Save(entries []article.ArchiveEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal archive: %w", err)
	}

	return WriteFileAtomic(r.path, append(data, '\n'))
}
