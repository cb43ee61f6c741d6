package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDecodeTableItems_DataEnvelope(t *testing.T) {
	data := []byte(`{"data": [
		{"title": "Row", "content": "Body", "url": "http://x/row", "source": "Table", "created_at": "2024-01-15T10:30:00Z"}
	]}`)

	items, err := decodeTableItems(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}
	if items[0].Title != "Row" || items[0].URL != "http://x/row" {
		t.Errorf("Unexpected item: %+v", items[0])
	}
	if items[0].Origin != "Table" {
		t.Errorf("Expected source mapped to origin, got %q", items[0].Origin)
	}
	if items[0].PublishedRaw != "2024-01-15T10:30:00Z" {
		t.Errorf("Expected created_at carried as raw date, got %q", items[0].PublishedRaw)
	}
}

func TestDecodeTableItems_RecordsEnvelopeWithFields(t *testing.T) {
	data := []byte(`{"records": [
		{"fields": {"title": "Nested", "url": "http://x/nested", "content": "Body"}}
	]}`)

	items, err := decodeTableItems(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if items[0].Title != "Nested" || items[0].URL != "http://x/nested" {
		t.Errorf("Nested fields not merged: %+v", items[0])
	}
}

func TestDecodeTableItems_BareArray(t *testing.T) {
	data := []byte(`[{"title": "Bare", "url": "http://x/bare"}]`)

	items, err := decodeTableItems(data)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Bare" {
		t.Errorf("Bare array not accepted: %+v", items)
	}
}

func TestTableSource_Fetch_EndpointFallback(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer failing.Close()

	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"title": "Found", "url": "http://x/found"}]}`))
	}))
	defer working.Close()

	config := &Config{
		Name:      "test-table",
		Type:      TypeTable,
		Endpoints: []string{failing.URL, working.URL},
		Settings:  ConfigSettings{Limit: 10, Timeout: 5},
	}
	src := NewTableSource(config, http.DefaultClient, "Test/1.0")

	items, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Found" {
		t.Errorf("Expected the second candidate to serve the batch, got %+v", items)
	}
}

func TestTableSource_Fetch_AllCandidatesFail(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer failing.Close()

	config := &Config{
		Name:      "test-table",
		Type:      TypeTable,
		Endpoints: []string{failing.URL},
		Settings:  ConfigSettings{Limit: 10, Timeout: 5},
	}
	src := NewTableSource(config, http.DefaultClient, "Test/1.0")

	items, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Total failure should yield an explicit empty batch: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no fabricated content, got %d items", len(items))
	}
}

func TestTableSource_Fetch_LimitApplied(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [
			{"title": "1", "url": "http://x/1"},
			{"title": "2", "url": "http://x/2"},
			{"title": "3", "url": "http://x/3"}
		]}`))
	}))
	defer server.Close()

	config := &Config{
		Name:      "test-table",
		Type:      TypeTable,
		Endpoints: []string{server.URL},
		Settings:  ConfigSettings{Limit: 2, Timeout: 5},
	}
	src := NewTableSource(config, http.DefaultClient, "Test/1.0")

	items, err := src.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("Expected limit of 2 applied, got %d", len(items))
	}
}
