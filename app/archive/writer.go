package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/medaffairs/newsroom/app/article"
)

const slugLength = 50

// Writer saves individual articles as markdown files in the archive
// directory. Files are keyed by date and title slug; an article whose
// file already exists is a no-op.
type Writer struct {
	dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Run writes one article. It returns the file path and whether a new
// file was created.
func (w *Writer) Run(a article.Article) (string, bool, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create articles directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.md", a.PublishedDate.Format("2006-01-02"), slugify(a.Title, slugLength))
	path := filepath.Join(w.dir, filename)

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}

	if err := os.WriteFile(path, []byte(w.render(a)), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write article file: %w", err)
	}

	return path, true, nil
}

func (w *Writer) render(a article.Article) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", a.Title)
	fmt.Fprintf(&sb, "**Source:** %s  \n", a.Source)
	fmt.Fprintf(&sb, "**Author:** %s  \n", a.Author)
	fmt.Fprintf(&sb, "**Published:** %s  \n", a.PublishedDate.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "**URL:** %s  \n\n", a.URL)
	sb.WriteString("---\n\n")
	sb.WriteString(a.Content)
	sb.WriteString("\n\n---\n")
	fmt.Fprintf(&sb, "*Captured on %s*\n", time.Now().Format("2006-01-02 15:04:05"))

	return sb.String()
}
