package site

// Entry is the display projection of an article in the site document.
type Entry struct {
	ID        string `json:"-"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Source    string `json:"source"`
	Published int64  `json:"published"` // epoch milliseconds
	Image     string `json:"image,omitempty"`
}

// Document is the artifact consumed by the static site renderer.
type Document struct {
	LastUpdated int64              `json:"last_updated"` // epoch milliseconds
	Heroes      []Entry            `json:"heroes"`
	Columns     map[string][]Entry `json:"columns"`
}
