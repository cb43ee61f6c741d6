package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Content pipeline paths
	SourcesDir     string `long:"sources-dir" env:"SOURCES_DIR" default:"./sources" description:"Directory containing source configuration files"`
	ArticlesDir    string `long:"articles-dir" env:"ARTICLES_DIR" default:"./articles" description:"Directory for the markdown article archive"`
	DataFile       string `long:"data-file" env:"DATA_FILE" default:"./articles.json" description:"Path to the persisted article collection"`
	ArchiveFile    string `long:"archive-file" env:"ARCHIVE_FILE" default:"./_data/articles.json" description:"Path to the flat article array maintained by the webhook"`
	SiteFile       string `long:"site-file" env:"SITE_FILE" default:"./data/articles.json" description:"Path to the site-facing document"`
	CategoriesFile string `long:"categories-file" env:"CATEGORIES_FILE" description:"Optional YAML file with column categorization rules"`

	// Display limits
	MaxHeroes     int `long:"max-heroes" env:"MAX_HEROES" default:"3" description:"Maximum number of hero articles"`
	MaxColumns    int `long:"max-columns" env:"MAX_COLUMNS" default:"6" description:"Maximum number of column articles"`
	HeroesCount   int `long:"heroes-count" env:"HEROES_COUNT" default:"3" description:"Number of hero slots in the site document"`
	ColumnSize    int `long:"column-size" env:"COLUMN_SIZE" default:"10" description:"Maximum entries per column bucket in the site document"`
	SummaryLength int `long:"summary-length" env:"SUMMARY_LENGTH" default:"200" description:"Maximum article summary length in characters"`

	// Application configuration
	Port              string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	BaseUrl           string `long:"base-url" env:"BASE_URL" description:"Public base URL for the service"`
	WorkerCount       int    `long:"worker-count" env:"WORKER_COUNT" default:"2" description:"Number of background workers for capture tasks"`
	SchedulerInterval int    `long:"scheduler-interval" env:"SCHEDULER_INTERVAL" default:"300" description:"Scheduler interval in seconds"`
	APIAccessKey      string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key for authentication (optional)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Newsroom/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, America/New_York)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		SourcesDir:        raw.SourcesDir,
		ArticlesDir:       raw.ArticlesDir,
		DataFile:          raw.DataFile,
		ArchiveFile:       raw.ArchiveFile,
		SiteFile:          raw.SiteFile,
		CategoriesFile:    raw.CategoriesFile,
		MaxHeroes:         raw.MaxHeroes,
		MaxColumns:        raw.MaxColumns,
		HeroesCount:       raw.HeroesCount,
		ColumnSize:        raw.ColumnSize,
		SummaryLength:     raw.SummaryLength,
		Port:              raw.Port,
		BaseUrl:           raw.BaseUrl,
		WorkerCount:       raw.WorkerCount,
		SchedulerInterval: raw.SchedulerInterval,
		APIAccessKey:      raw.APIAccessKey,
		UserAgent:         raw.UserAgent,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

// Set replaces the global configuration. Intended for tests.
func Set(c *Cfg) {
	globalCfg = c
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
