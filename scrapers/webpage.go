package scrapers

import (
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"councilbot/types"
)

const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

var fileSizeNoteRe = regexp.MustCompile(`(?i)\(?\s*pdf[,\s]*[\d\.]+\s*(KB|MB|GB)\s*\)?`)

// WebpageScraper reads a council's meetings page and collects agenda
// and minutes links. It covers the common layouts: direct PDF links,
// list items, and table rows.
type WebpageScraper struct {
	src    Source
	client *resty.Client
}

func NewWebpageScraper(src Source) *WebpageScraper {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("User-Agent", browserUA)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	return &WebpageScraper{src: src, client: client}
}

func (s *WebpageScraper) Source() Source { return s.src }

func (s *WebpageScraper) Scrape() ([]types.MeetingDocument, error) {
	resp, err := s.client.R().Get(s.src.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meetings page for %s: %w", s.src.Name, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("meetings page for %s returned status %d", s.src.Name, resp.StatusCode())
	}

	return s.parsePage(strings.NewReader(resp.String()))
}

// parsePage extracts documents from a meetings page body. Split from
// Scrape so fixture HTML can exercise it directly.
func (s *WebpageScraper) parsePage(body io.Reader) ([]types.MeetingDocument, error) {
	page, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse meetings page for %s: %w", s.src.Name, err)
	}

	var docs []types.MeetingDocument
	page.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		text := strings.TrimSpace(link.Text())

		if !strings.Contains(strings.ToLower(href), ".pdf") {
			return
		}

		// Row or list context often carries the date when the link
		// text is just "Agenda"
		context := text
		if parent := link.Closest("li, tr"); parent.Length() > 0 {
			context = contextText(parent)
		}

		docType := classifyDocType(text)
		if docType == "" {
			docType = classifyDocType(context)
		}
		if docType == "" {
			return
		}

		docs = append(docs, types.MeetingDocument{
			SourceID:     s.src.ID,
			SourceName:   s.src.Name,
			DocumentType: docType,
			MeetingType:  meetingTypeOrDefault(s.src),
			Title:        cleanLinkTitle(text, context),
			Date:         firstDate(text, context),
			URL:          s.absoluteURL(href),
			WebpageURL:   s.src.URL,
		})
	})

	return MergeDocuments(docs), nil
}

// contextText flattens a list item or table row to one line. Table
// cells are joined with spaces; Text() alone would run adjacent cells
// together and hide the date from the pattern match.
func contextText(parent *goquery.Selection) string {
	var parts []string
	if parent.Is("tr") {
		parent.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			parts = append(parts, strings.TrimSpace(cell.Text()))
		})
	}
	if len(parts) == 0 {
		parts = []string{parent.Text()}
	}
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func (s *WebpageScraper) absoluteURL(href string) string {
	base, err := url.Parse(s.src.URL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// cleanLinkTitle strips file-size noise like "(PDF, 1.2 MB)" and falls
// back to the surrounding row text for bare links
func cleanLinkTitle(text, context string) string {
	title := strings.TrimSpace(fileSizeNoteRe.ReplaceAllString(text, ""))
	if len(title) < 8 {
		title = strings.TrimSpace(fileSizeNoteRe.ReplaceAllString(context, ""))
	}
	if len(title) > 120 {
		title = title[:120]
	}
	return title
}

func firstDate(text, context string) string {
	if d := ExtractDate(text); d != "" {
		return d
	}
	return ExtractDate(context)
}
