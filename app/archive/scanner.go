package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/medaffairs/newsroom/app/article"
)

var (
	urlLine       = regexp.MustCompile(`^\*\*URL:\*\*\s*(.+)$`)
	publishedLine = regexp.MustCompile(`^\*\*Published:\*\*\s*(.+)$`)
	sourceLine    = regexp.MustCompile(`^\*\*Source:\*\*\s*(.+)$`)
)

// Scanner re-parses the markdown archive back into minimal article
// records, feeding the derive-on-format publishing path.
type Scanner struct {
	dir string
}

func NewScanner(dir string) *Scanner {
	return &Scanner{dir: dir}
}

func (s *Scanner) Run() ([]article.Article, error) {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return []article.Article{}, nil
	}

	files, err := filepath.Glob(filepath.Join(s.dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("failed to list archive files: %w", err)
	}
	sort.Strings(files)

	articles := make([]article.Article, 0, len(files))
	for _, file := range files {
		a, err := s.parseFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}
		articles = append(articles, a)
	}

	return articles, nil
}

func (s *Scanner) parseFile(path string) (article.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return article.Article{}, err
	}

	a := article.Article{}
	for _, line := range strings.Split(string(data), "\n") {
		if a.Title == "" && strings.HasPrefix(line, "# ") {
			a.Title = strings.TrimSpace(line[2:])
			continue
		}
		if m := urlLine.FindStringSubmatch(line); m != nil {
			a.URL = strings.TrimSpace(m[1])
		}
		if m := publishedLine.FindStringSubmatch(line); m != nil {
			if parsed, err := dateparse.ParseAny(strings.TrimSpace(m[1])); err == nil {
				a.PublishedDate = parsed.UTC()
			}
		}
		if m := sourceLine.FindStringSubmatch(line); m != nil {
			a.Source = strings.TrimSpace(m[1])
		}
	}

	if a.Title == "" {
		a.Title = strings.TrimSuffix(filepath.Base(path), ".md")
	}
	a.ID = article.GenerateID(a.Title, a.URL)

	return a, nil
}
