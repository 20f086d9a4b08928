package scrapers

import (
	"fmt"

	"github.com/mmcdole/gofeed"

	"councilbot/types"
)

// FeedScraper reads an RSS/Atom feed of meeting documents. A few
// councils publish their agendas and minutes this way, which is far
// more reliable than scraping HTML.
type FeedScraper struct {
	src    Source
	parser *gofeed.Parser
}

func NewFeedScraper(src Source) *FeedScraper {
	return &FeedScraper{src: src, parser: gofeed.NewParser()}
}

func (s *FeedScraper) Source() Source { return s.src }

func (s *FeedScraper) Scrape() ([]types.MeetingDocument, error) {
	feed, err := s.parser.ParseURL(s.src.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed for %s: %w", s.src.Name, err)
	}

	var docs []types.MeetingDocument
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}

		docType := classifyDocType(item.Title + " " + item.Description)
		if docType == "" {
			continue
		}

		date := ExtractDate(item.Title)
		if date == "" && item.PublishedParsed != nil {
			date = item.PublishedParsed.Format("2006-01-02")
		}

		docs = append(docs, types.MeetingDocument{
			SourceID:     s.src.ID,
			SourceName:   s.src.Name,
			DocumentType: docType,
			MeetingType:  meetingTypeOrDefault(s.src),
			Title:        item.Title,
			Date:         date,
			URL:          item.Link,
			WebpageURL:   s.src.URL,
		})
	}

	return MergeDocuments(docs), nil
}
