package site

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/medaffairs/newsroom/app/article"
)

// Rule assigns a column bucket to articles whose display title or source
// contains one of the keywords. Rules are evaluated in order; the first
// match wins.
type Rule struct {
	Bucket   string   `yaml:"bucket"`
	Keywords []string `yaml:"keywords"`
}

type Categorizer struct {
	rules         []Rule
	defaultBucket string
}

// defaultRules reproduce the historical keyword policy.
func defaultRules() []Rule {
	return []Rule{
		{
			Bucket: "tech",
			Keywords: []string{
				"ai", "artificial intelligence", "tech", "digital",
				"software", "app", "platform", "innovation",
			},
		},
		{
			Bucket: "opinion",
			Keywords: []string{
				"opinion", "analysis", "editorial", "commentary",
				"perspective", "viewpoint",
			},
		},
	}
}

func NewCategorizer() *Categorizer {
	return &Categorizer{
		rules:         defaultRules(),
		defaultBucket: "news",
	}
}

type categorizerFile struct {
	Default string `yaml:"default"`
	Rules   []Rule `yaml:"rules"`
}

// LoadCategorizer reads a rule table from a YAML file, so the
// categorization policy can evolve without code changes.
func LoadCategorizer(path string) (*Categorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories file: %w", err)
	}

	var file categorizerFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse categories file: %w", err)
	}

	c := &Categorizer{
		rules:         file.Rules,
		defaultBucket: file.Default,
	}
	if c.defaultBucket == "" {
		c.defaultBucket = "news"
	}
	if len(c.rules) == 0 {
		c.rules = defaultRules()
	}

	return c, nil
}

// Run picks the column bucket for an article by keyword matching against
// its display title and source.
func (c *Categorizer) Run(a article.Article) string {
	title := strings.ToLower(a.DisplayTitle())
	source := strings.ToLower(a.Source)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(title, keyword) || strings.Contains(source, keyword) {
				return rule.Bucket
			}
		}
	}

	return c.defaultBucket
}

// Buckets returns every bucket the rule table can produce, default last.
func (c *Categorizer) Buckets() []string {
	buckets := make([]string, 0, len(c.rules)+1)
	seen := make(map[string]bool)
	for _, rule := range c.rules {
		if !seen[rule.Bucket] {
			buckets = append(buckets, rule.Bucket)
			seen[rule.Bucket] = true
		}
	}
	if !seen[c.defaultBucket] {
		buckets = append(buckets, c.defaultBucket)
	}
	return buckets
}
