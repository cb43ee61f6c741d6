package normalizer

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	readability "codeberg.org/readeck/go-readability"
	"github.com/JohannesKaufmann/dom"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"golang.org/x/net/html"
)

var (
	mdConverter     *converter.Converter
	mdConverterOnce sync.Once
	blankLines      = regexp.MustCompile(`\n{3,}`)
)

// Normalizer converts raw HTML into markdown-flavoured plain text: bold,
// italic and links keep their inline markup, everything else is stripped.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// getConverter returns a shared converter that drops base64 data URI
// images, emitting their alt text instead.
func getConverter() *converter.Converter {
	mdConverterOnce.Do(func() {
		mdConverter = converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		)
		mdConverter.Register.RendererFor("img", converter.TagTypeInline,
			func(ctx converter.Context, w converter.Writer, n *html.Node) converter.RenderStatus {
				src := dom.GetAttributeOr(n, "src", "")
				if !strings.HasPrefix(src, "data:") {
					return converter.RenderTryNext
				}
				alt := strings.TrimSpace(dom.GetAttributeOr(n, "alt", ""))
				if alt != "" {
					w.WriteString("[Image: " + alt + "]")
				}
				return converter.RenderSuccess
			},
			converter.PriorityEarly,
		)
	})
	return mdConverter
}

// Run cleans rawHTML into plain text. Full HTML documents go through
// readability first so boilerplate does not leak into the article body.
// Empty input is not an error.
func (n *Normalizer) Run(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	body := rawHTML
	if isFullDocument(rawHTML) {
		extracted, err := extractMainContent(rawHTML)
		if err != nil {
			slog.Warn("Content extraction failed, converting document as-is", "error", err)
		} else {
			body = extracted
		}
	}

	md, err := getConverter().ConvertString(body)
	if err != nil {
		return "", fmt.Errorf("markdown conversion: %w", err)
	}

	return tidy(md), nil
}

func isFullDocument(s string) bool {
	lowered := strings.ToLower(s)
	return strings.Contains(lowered, "<html") || strings.Contains(lowered, "<body")
}

func extractMainContent(rawHTML string) (string, error) {
	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract content: %w", err)
	}
	if article.Content == "" {
		return "", fmt.Errorf("no content extracted from HTML data")
	}
	return article.Content, nil
}

// tidy trims trailing space per line and collapses runs of blank lines.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := strings.Join(lines, "\n")
	out = blankLines.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
