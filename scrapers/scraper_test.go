package scrapers

import (
	"os"
	"path/filepath"
	"testing"

	"councilbot/types"
)

func TestLoadSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.json")
	registry := `[
		{"id": "darebin", "name": "Darebin City Council", "kind": "infocouncil", "url": "https://darebin.infocouncil.biz"},
		{"id": "melbourne", "name": "City of Melbourne", "kind": "webpage", "url": "https://www.melbourne.vic.gov.au/meetings", "meeting_type": "council"}
	]`
	if err := os.WriteFile(path, []byte(registry), 0o644); err != nil {
		t.Fatal(err)
	}

	sources, err := LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(sources))
	}
	if sources[0].ID != "darebin" || sources[0].Kind != "infocouncil" {
		t.Errorf("first source = %+v", sources[0])
	}
	if sources[1].MeetingType != "council" {
		t.Errorf("meeting_type not read: %+v", sources[1])
	}
}

func TestLoadSourcesRejectsIncompleteEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.json")
	if err := os.WriteFile(path, []byte(`[{"name": "No ID Council", "kind": "webpage"}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSources(path); err == nil {
		t.Error("expected error for entry without id and url")
	}
}

func TestLoadSourcesMissingFile(t *testing.T) {
	if _, err := LoadSources(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing registry file")
	}
}

func TestNewDispatch(t *testing.T) {
	kinds := []string{"infocouncil", "webpage", "feed", "crawl"}
	for _, kind := range kinds {
		s, err := New(Source{ID: "x", Name: "X", Kind: kind, URL: "https://example.com"})
		if err != nil {
			t.Errorf("New(%s): %v", kind, err)
			continue
		}
		if s.Source().ID != "x" {
			t.Errorf("New(%s) lost the source", kind)
		}
	}

	if _, err := New(Source{ID: "x", Kind: "selenium", URL: "https://example.com"}); err == nil {
		t.Error("expected error for unknown scraper kind")
	}
}

func TestMergeDocuments(t *testing.T) {
	docs := []types.MeetingDocument{
		{Title: "older", Date: "2025-08-01", URL: "https://a/1.pdf"},
		{Title: "newer", Date: "2025-08-20", URL: "https://a/2.pdf"},
		{Title: "duplicate", Date: "2025-08-25", URL: "https://a/1.pdf"},
	}

	merged := MergeDocuments(docs)
	if len(merged) != 2 {
		t.Fatalf("got %d documents, want 2 after URL dedup", len(merged))
	}
	if merged[0].Date != "2025-08-20" {
		t.Errorf("not sorted newest first: %+v", merged)
	}
	if merged[1].Title != "older" {
		t.Errorf("first occurrence should win the URL dedup: %+v", merged[1])
	}
}
