package article

// Reconciler merges freshly built articles against the previously
// persisted collection, carrying user-set fields forward.
type Reconciler struct{}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Run copies manual_title and the hero/column flags from an existing
// article onto its freshly built counterpart. Matching is by id first;
// a URL fallback covers upstream identifier churn. Unmatched articles
// keep builder defaults.
func (r *Reconciler) Run(fresh []Article, existing []Article) []Article {
	byID := make(map[string]Article, len(existing))
	byURL := make(map[string]Article, len(existing))
	for _, a := range existing {
		byID[a.ID] = a
		if a.URL != "" {
			byURL[a.URL] = a
		}
	}

	reconciled := make([]Article, 0, len(fresh))
	for _, a := range fresh {
		prev, ok := byID[a.ID]
		if !ok && a.URL != "" {
			prev, ok = byURL[a.URL]
		}
		if ok {
			a.ManualTitle = prev.ManualTitle
			a.IsHero = prev.IsHero
			a.IsColumn = prev.IsColumn
		}
		reconciled = append(reconciled, a)
	}

	return reconciled
}
