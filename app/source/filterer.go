package source

import (
	"log/slog"
	"strings"
)

// Filterer drops items matching the exclusion rules of a source
// configuration, and keeps only items matching the inclusion rules
// when any are present. Matching is case-insensitive substring.
type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

func (f *Filterer) Run(items []Item, config *Config) []Item {
	if len(config.Filters) == 0 {
		return items
	}

	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if reason := f.excludeReason(item, config.Filters); reason != "" {
			slog.Debug("Item filtered out", "source", config.Name, "url", item.URL, "reason", reason)
			continue
		}
		kept = append(kept, item)
	}

	return kept
}

func (f *Filterer) excludeReason(item Item, filters []ConfigFilter) string {
	for _, filter := range filters {
		value := f.getFieldValue(item, filter.Field)

		for _, exclude := range filter.Excludes {
			if f.matchesFilter(value, exclude) {
				return "excluded by " + filter.Field + " filter: contains '" + exclude + "'"
			}
		}

		if len(filter.Includes) > 0 {
			matched := false
			for _, include := range filter.Includes {
				if f.matchesFilter(value, include) {
					matched = true
					break
				}
			}
			if !matched {
				return "excluded by " + filter.Field + " filter: no include pattern matched"
			}
		}
	}

	return ""
}

func (f *Filterer) matchesFilter(value, pattern string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(pattern))
}

func (f *Filterer) getFieldValue(item Item, field string) string {
	switch field {
	case "title":
		return item.Title
	case "content":
		return item.ContentHTML
	case "author":
		return item.Author
	case "url":
		return item.URL
	case "origin":
		return item.Origin
	case "categories":
		return strings.Join(item.Categories, " ")
	default:
		return ""
	}
}
