// Package scrapers discovers meeting documents from council websites.
// Each source in the registry names a scraper kind; the scrapers all
// produce MeetingDocument values that feed the scheduler.
package scrapers

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"councilbot/types"
)

// Source is one registry entry describing where and how to scrape a
// council's meeting documents
type Source struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"` // infocouncil, webpage, feed, crawl
	URL         string `json:"url"`
	MeetingType string `json:"meeting_type,omitempty"`
}

// Scraper fetches meeting documents for a single source
type Scraper interface {
	Scrape() ([]types.MeetingDocument, error)
	Source() Source
}

// LoadSources reads the source registry from a JSON file
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source registry: %w", err)
	}

	var sources []Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("failed to parse source registry: %w", err)
	}

	for _, src := range sources {
		if src.ID == "" || src.URL == "" {
			return nil, fmt.Errorf("source registry entry missing id or url: %+v", src)
		}
	}
	return sources, nil
}

// New builds the scraper for a registry entry
func New(src Source) (Scraper, error) {
	switch src.Kind {
	case "infocouncil":
		return NewInfoCouncilScraper(src), nil
	case "webpage":
		return NewWebpageScraper(src), nil
	case "feed":
		return NewFeedScraper(src), nil
	case "crawl":
		return NewCrawlScraper(src), nil
	default:
		return nil, fmt.Errorf("unknown scraper kind %q for source %s", src.Kind, src.ID)
	}
}

// ScrapeAll runs every source and merges the results. A source that
// fails is logged and skipped; one broken council website must not
// take down the whole run.
func ScrapeAll(sources []Source) types.ScrapeResults {
	var all []types.MeetingDocument
	for _, src := range sources {
		scraper, err := New(src)
		if err != nil {
			log.Printf("Skipping source %s: %v", src.ID, err)
			continue
		}

		docs, err := scraper.Scrape()
		if err != nil {
			log.Printf("Failed to scrape %s: %v", src.Name, err)
			continue
		}
		log.Printf("Scraped %d documents from %s", len(docs), src.Name)
		all = append(all, docs...)
	}

	return types.ScrapeResults{
		ScrapedAt:   time.Now(),
		SourceCount: len(sources),
		Documents:   MergeDocuments(all),
	}
}

// MergeDocuments drops duplicate URLs (first occurrence wins) and
// sorts newest first
func MergeDocuments(docs []types.MeetingDocument) []types.MeetingDocument {
	seen := make(map[string]struct{}, len(docs))
	merged := make([]types.MeetingDocument, 0, len(docs))
	for _, d := range docs {
		if _, ok := seen[d.URL]; ok {
			continue
		}
		seen[d.URL] = struct{}{}
		merged = append(merged, d)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date > merged[j].Date
	})
	return merged
}
