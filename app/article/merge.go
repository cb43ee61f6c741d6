package article

// Merge unions freshly built articles with the previously persisted set.
// Fresh articles win on identifier or URL collision, so re-ingesting an
// item never duplicates it; articles that dropped out of the upstream
// window are retained. Duplicates within the fresh batch itself (the
// same item from two sources, or repeated in one) collapse to the first
// occurrence.
func Merge(fresh []Article, existing []Article) []Article {
	seenID := make(map[string]bool, len(fresh))
	seenURL := make(map[string]bool, len(fresh))

	merged := make([]Article, 0, len(fresh)+len(existing))
	for _, a := range fresh {
		if seenID[a.ID] {
			continue
		}
		if a.URL != "" && seenURL[a.URL] {
			continue
		}
		seenID[a.ID] = true
		if a.URL != "" {
			seenURL[a.URL] = true
		}
		merged = append(merged, a)
	}

	for _, a := range existing {
		if seenID[a.ID] {
			continue
		}
		if a.URL != "" && seenURL[a.URL] {
			continue
		}
		merged = append(merged, a)
	}

	return merged
}
