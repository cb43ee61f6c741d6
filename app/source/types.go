package source

// Item is the shape-neutral raw record every source adapter produces.
// The article builder consumes it without knowing which upstream shape
// it came from.
type Item struct {
	Title         string
	URL           string
	ContentHTML   string
	Author        string
	Origin        string
	PublishedUnix int64
	PublishedRaw  string
	Categories    []string
	Image         string
}

const (
	TypeReader = "reader"
	TypeTable  = "table"
	TypeRSS    = "rss"
)

// Configuration types

type Config struct {
	Name      string         // Derived from filename (without .yml extension)
	Type      string         `yaml:"type"` // TypeReader, TypeTable or TypeRSS
	URL       string         `yaml:"url"`
	Endpoints []string       `yaml:"endpoints"`
	Token     string         `yaml:"token"`
	Tag       string         `yaml:"tag"`
	Filters   []ConfigFilter `yaml:"filters"`
	Settings  ConfigSettings `yaml:"settings"`
}

type ConfigFilter struct {
	Field    string   `yaml:"field"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

type ConfigSettings struct {
	Enabled  bool `yaml:"enabled"`
	Limit    int  `yaml:"limit"`
	DaysBack int  `yaml:"days_back"`
	Timeout  int  `yaml:"timeout"` // seconds
}
