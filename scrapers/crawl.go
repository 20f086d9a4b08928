package scrapers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gocolly/colly"

	"councilbot/types"
)

const crawlMaxDepth = 2

// CrawlScraper walks a council's paginated meeting archive with a
// bounded crawl. Used for sites that split their agendas across
// year or month pages with no single listing.
type CrawlScraper struct {
	src Source
}

func NewCrawlScraper(src Source) *CrawlScraper {
	return &CrawlScraper{src: src}
}

func (s *CrawlScraper) Source() Source { return s.src }

func (s *CrawlScraper) Scrape() ([]types.MeetingDocument, error) {
	start, err := url.Parse(s.src.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid crawl URL for %s: %w", s.src.Name, err)
	}

	collector := colly.NewCollector(
		colly.AllowedDomains(start.Host),
		colly.UserAgent(browserUA),
		colly.MaxDepth(crawlMaxDepth),
	)

	var docs []types.MeetingDocument
	collector.OnHTML("a[href]", func(e *colly.HTMLElement) {
		href := e.Request.AbsoluteURL(e.Attr("href"))
		text := strings.TrimSpace(e.Text)
		low := strings.ToLower(href)

		if strings.Contains(low, ".pdf") {
			docType := classifyDocType(text)
			if docType == "" {
				docType = classifyDocType(low)
			}
			if docType == "" {
				return
			}
			docs = append(docs, types.MeetingDocument{
				SourceID:     s.src.ID,
				SourceName:   s.src.Name,
				DocumentType: docType,
				MeetingType:  meetingTypeOrDefault(s.src),
				Title:        cleanLinkTitle(text, text),
				Date:         ExtractDate(text),
				URL:          href,
				WebpageURL:   e.Request.URL.String(),
			})
			return
		}

		// Follow archive pagination only; anything else explodes the
		// crawl on large council sites
		lowText := strings.ToLower(text)
		if strings.Contains(lowText, "agenda") || strings.Contains(lowText, "minutes") ||
			strings.Contains(lowText, "meeting") || isYearLink(text) {
			e.Request.Visit(href)
		}
	})

	if err := collector.Visit(s.src.URL); err != nil {
		return nil, fmt.Errorf("failed to crawl %s: %w", s.src.Name, err)
	}
	collector.Wait()

	return MergeDocuments(docs), nil
}

// isYearLink matches pagination links like "2025" or "2024 meetings"
func isYearLink(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 4 {
		return false
	}
	year := trimmed[:4]
	if year < "2015" || year > "2035" {
		return false
	}
	for _, c := range year {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
