package cfg

type Cfg struct {
	// Content pipeline paths
	SourcesDir     string
	ArticlesDir    string
	DataFile       string
	ArchiveFile    string
	SiteFile       string
	CategoriesFile string

	// Display limits
	MaxHeroes     int
	MaxColumns    int
	HeroesCount   int
	ColumnSize    int
	SummaryLength int

	// Application configuration
	Port              string
	BaseUrl           string
	WorkerCount       int
	SchedulerInterval int
	APIAccessKey      string

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
