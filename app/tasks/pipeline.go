package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/medaffairs/newsroom/app/archive"
	"github.com/medaffairs/newsroom/app/article"
	"github.com/medaffairs/newsroom/app/cfg"
	"github.com/medaffairs/newsroom/app/site"
	"github.com/medaffairs/newsroom/app/source"
	"github.com/medaffairs/newsroom/app/store"
)

// RunSummary reports what a capture run did.
type RunSummary struct {
	Fetched  int
	Built    int
	Skipped  int
	Archived int
	Heroes   int
	Columns  int
}

// Pipeline runs the full ingestion cycle: fetch from every enabled
// source, build articles, archive them as markdown, reconcile manual
// overrides against the persisted collection, enforce hero and column
// limits, then publish the site document. Runs are serialized so two
// overlapping captures never race on the collection file.
type Pipeline struct {
	mu             sync.Mutex
	configCache    *source.ConfigCache
	httpClient     *http.Client
	filterer       *source.Filterer
	builder        *article.Builder
	reconciler     *article.Reconciler
	limiter        *article.Limiter
	formatter      *site.Formatter
	collectionRepo store.CollectionRepository
	archiveRepo    store.ArchiveRepository
	archiveWriter  *archive.Writer
	archiveScanner *archive.Scanner
}

func NewPipeline(configCache *source.ConfigCache, httpClient *http.Client,
	filterer *source.Filterer, builder *article.Builder, reconciler *article.Reconciler,
	limiter *article.Limiter, formatter *site.Formatter,
	collectionRepo store.CollectionRepository, archiveRepo store.ArchiveRepository,
	archiveWriter *archive.Writer, archiveScanner *archive.Scanner) *Pipeline {
	return &Pipeline{
		configCache:    configCache,
		httpClient:     httpClient,
		filterer:       filterer,
		builder:        builder,
		reconciler:     reconciler,
		limiter:        limiter,
		formatter:      formatter,
		collectionRepo: collectionRepo,
		archiveRepo:    archiveRepo,
		archiveWriter:  archiveWriter,
		archiveScanner: archiveScanner,
	}
}

// Capture ingests from the named source, or from every enabled source
// when sourceName is empty.
func (p *Pipeline) Capture(ctx context.Context, sourceName string) (RunSummary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	cfg := cfg.Get()
	summary := RunSummary{}

	configs, err := p.selectConfigs(sourceName)
	if err != nil {
		return summary, err
	}

	fresh := []article.Article{}
	for _, config := range configs {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		src, err := source.New(config, p.httpClient, cfg.UserAgent)
		if err != nil {
			slog.Error("Failed to initialize source", "source", config.Name, "error", err)
			continue
		}

		items, err := src.Fetch(ctx)
		if err != nil {
			slog.Error("Failed to fetch source", "source", config.Name, "error", err)
			continue
		}
		summary.Fetched += len(items)

		items = p.filterer.Run(items, config)

		for _, item := range items {
			a, err := p.builder.Run(item, "")
			if err != nil {
				slog.Warn("Skipping item", "source", config.Name, "url", item.URL, "error", err)
				summary.Skipped++
				continue
			}
			fresh = append(fresh, a)
			summary.Built++

			if p.archiveWriter != nil {
				_, created, err := p.archiveWriter.Run(a)
				if err != nil {
					slog.Warn("Failed to write archive file", "article", a.ID, "error", err)
				} else if created {
					summary.Archived++
				}
			}
		}
	}

	collection, err := p.collectionRepo.Load()
	if err != nil {
		return summary, fmt.Errorf("failed to load collection: %w", err)
	}

	reconciled := p.reconciler.Run(fresh, collection.Articles)
	merged := article.Merge(reconciled, collection.Articles)
	result := p.limiter.Run(merged, collection.Limits.MaxHeroes, collection.Limits.MaxColumns)

	now := time.Now()
	collection.Articles = result.Articles
	collection.Heroes = result.HeroIDs
	collection.Columns = result.ColumnIDs
	collection.LastUpdated = &now

	if err := p.collectionRepo.Save(collection); err != nil {
		return summary, fmt.Errorf("failed to save collection: %w", err)
	}

	summary.Heroes = len(result.HeroIDs)
	summary.Columns = len(result.ColumnIDs)

	if err := p.Publish(); err != nil {
		return summary, err
	}

	return summary, nil
}

// Publish rebuilds the site document from the persisted collection.
func (p *Pipeline) Publish() error {
	collection, err := p.collectionRepo.Load()
	if err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}

	doc := p.formatter.FormatCollection(collection)
	if err := site.Write(cfg.Get().SiteFile, doc); err != nil {
		return fmt.Errorf("failed to write site document: %w", err)
	}

	return nil
}

// Derive rebuilds the site document from the flat archive array,
// choosing heroes and columns without any curation flags. When the
// archive array is empty it falls back to scanning the markdown
// archive directory.
func (p *Pipeline) Derive() error {
	entries, err := p.archiveRepo.Load()
	if err != nil {
		return fmt.Errorf("failed to load archive: %w", err)
	}

	var articles []article.Article
	if len(entries) > 0 {
		articles = site.FromArchiveEntries(entries)
	} else {
		articles, err = p.archiveScanner.Run()
		if err != nil {
			return fmt.Errorf("failed to scan markdown archive: %w", err)
		}
	}

	doc := p.formatter.FormatArchive(articles)
	if err := site.Write(cfg.Get().SiteFile, doc); err != nil {
		return fmt.Errorf("failed to write site document: %w", err)
	}

	return nil
}

func (p *Pipeline) selectConfigs(sourceName string) ([]*source.Config, error) {
	if sourceName != "" {
		config, err := p.configCache.GetConfig(sourceName)
		if err != nil {
			return nil, err
		}
		return []*source.Config{config}, nil
	}

	enabled := p.configCache.GetEnabledConfigs()
	names := make([]string, 0, len(enabled))
	for name := range enabled {
		names = append(names, name)
	}
	sort.Strings(names)

	configs := make([]*source.Config, 0, len(names))
	for _, name := range names {
		configs = append(configs, enabled[name])
	}
	return configs, nil
}
