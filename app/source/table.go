package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

var _ Source = (*TableSource)(nil)

// TableSource fetches article rows from a generic tabular-records API.
// Several endpoint patterns exist in the wild for the same table, so the
// configuration carries an ordered candidate list; candidates are tried
// sequentially until one yields a non-empty batch. When every candidate
// fails the result is an explicit empty batch, never fabricated content.
type TableSource struct {
	config    *Config
	client    *http.Client
	userAgent string
}

func NewTableSource(config *Config, client *http.Client, userAgent string) *TableSource {
	return &TableSource{
		config:    config,
		client:    client,
		userAgent: userAgent,
	}
}

func (s *TableSource) Name() string {
	return s.config.Name
}

func (s *TableSource) Fetch(ctx context.Context) ([]Item, error) {
	endpoints := s.config.Endpoints
	if len(endpoints) == 0 && s.config.URL != "" {
		endpoints = []string{s.config.URL}
	}

	timeout := time.Duration(s.config.Settings.Timeout) * time.Second

	for _, endpoint := range endpoints {
		data, err := fetchBytes(ctx, s.client, endpoint, s.config.Token, s.userAgent, "application/json", timeout)
		if err != nil {
			slog.Warn("Table endpoint failed, trying next candidate",
				"source", s.config.Name, "endpoint", endpoint, "error", err)
			continue
		}

		items, err := decodeTableItems(data)
		if err != nil {
			slog.Warn("Table endpoint returned unparseable data, trying next candidate",
				"source", s.config.Name, "endpoint", endpoint, "error", err)
			continue
		}

		if len(items) == 0 {
			slog.Debug("Table endpoint returned no records", "source", s.config.Name, "endpoint", endpoint)
			continue
		}

		if len(items) > s.config.Settings.Limit {
			items = items[:s.config.Settings.Limit]
		}
		return items, nil
	}

	slog.Info("No table endpoint yielded records", "source", s.config.Name, "candidates", len(endpoints))
	return []Item{}, nil
}

// Wire types for tabular responses. Both `data` and `records` envelopes
// occur, and some services nest the row values under `fields`.

type tableResponse struct {
	Data    []tableRecord `json:"data"`
	Records []tableRecord `json:"records"`
}

type tableRecord struct {
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	URL       string       `json:"url"`
	Source    string       `json:"source"`
	Author    string       `json:"author"`
	CreatedAt string       `json:"created_at"`
	Image     string       `json:"image"`
	Fields    *tableRecord `json:"fields"`
}

func decodeTableItems(data []byte) ([]Item, error) {
	var resp tableResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		// A bare array without an envelope is also accepted.
		var rows []tableRecord
		if arrErr := json.Unmarshal(data, &rows); arrErr != nil {
			return nil, fmt.Errorf("failed to parse table response: %w", err)
		}
		resp.Records = rows
	}

	rows := resp.Data
	if len(rows) == 0 {
		rows = resp.Records
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		if row.Fields != nil {
			row = mergeFields(row, *row.Fields)
		}
		items = append(items, Item{
			Title:        row.Title,
			URL:          row.URL,
			ContentHTML:  row.Content,
			Author:       row.Author,
			Origin:       row.Source,
			PublishedRaw: row.CreatedAt,
			Image:        row.Image,
		})
	}

	return items, nil
}

func mergeFields(row, fields tableRecord) tableRecord {
	if row.Title == "" {
		row.Title = fields.Title
	}
	if row.Content == "" {
		row.Content = fields.Content
	}
	if row.URL == "" {
		row.URL = fields.URL
	}
	if row.Source == "" {
		row.Source = fields.Source
	}
	if row.Author == "" {
		row.Author = fields.Author
	}
	if row.CreatedAt == "" {
		row.CreatedAt = fields.CreatedAt
	}
	if row.Image == "" {
		row.Image = fields.Image
	}
	return row
}
