package types

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Document type values produced by the scrapers.
const (
	DocTypeAgenda  = "agenda"
	DocTypeMinutes = "minutes"
)

// MeetingDocument represents a single agenda or minutes document
// discovered by a scraper
type MeetingDocument struct {
	SourceID     string `json:"source_id"`
	SourceName   string `json:"source_name"`
	DocumentType string `json:"document_type"`
	MeetingType  string `json:"meeting_type,omitempty"`
	Title        string `json:"title"`
	Date         string `json:"date"` // ISO YYYY-MM-DD
	URL          string `json:"url"`
	WebpageURL   string `json:"webpage_url,omitempty"`
}

// ScrapeResults is the top-level wrapper written by the scraper run
type ScrapeResults struct {
	ScrapedAt   time.Time         `json:"scraped_at"`
	SourceCount int               `json:"source_count"`
	Documents   []MeetingDocument `json:"documents"`
}

// QueueItem wraps a MeetingDocument with its assigned posting slot.
// Queue items are ephemeral: the queue is rebuilt on every run from the
// current document set minus the posted set.
type QueueItem struct {
	Doc          MeetingDocument `json:"doc"`
	ScheduledFor time.Time       `json:"scheduled_for"`
}

// PostRef identifies a post on the network, used for thread replies
type PostRef struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

// Action records the outcome of one scheduled item, for logging,
// dry-run previews and the run archive
type Action struct {
	When     string `json:"when"`
	Source   string `json:"source"`
	DocType  string `json:"type"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	BasePost string `json:"base_post"`
	Summary  string `json:"summary"`
	Posted   *bool  `json:"posted,omitempty"`
}

// LoadScrapeResults reads a scraper results file. A missing file is an
// error: there is nothing meaningful to schedule without one.
func LoadScrapeResults(path string) (*ScrapeResults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("missing results file %s (run the scrapers first): %w", path, err)
	}

	var results ScrapeResults
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to parse results file %s: %w", path, err)
	}
	return &results, nil
}
