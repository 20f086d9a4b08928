package scrapers

import (
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"

	"councilbot/types"
)

const defaultMonthsBack = 6

var pdfHrefRe = regexp.MustCompile(`(?i)href=["']([^"']+\.pdf)\b`)
var ddmmyyyyRe = regexp.MustCompile(`(\d{2})(\d{2})(\d{4})`)

// InfoCouncilScraper probes an InfoCouncil host (*.infocouncil.biz)
// for agenda and minutes PDFs. These hosts publish documents under
// /Open/YYYY/MM/ with dates and AGN/MIN markers baked into the
// filenames, so recent months can be discovered without a site index.
type InfoCouncilScraper struct {
	src        Source
	monthsBack int
	client     *resty.Client
}

func NewInfoCouncilScraper(src Source) *InfoCouncilScraper {
	client := resty.New().
		SetTimeout(15 * time.Second).
		SetHeader("User-Agent", browserUA)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	return &InfoCouncilScraper{
		src:        src,
		monthsBack: defaultMonthsBack,
		client:     client,
	}
}

func (s *InfoCouncilScraper) Source() Source { return s.src }

func (s *InfoCouncilScraper) Scrape() ([]types.MeetingDocument, error) {
	base := strings.TrimRight(s.src.URL, "/")

	var docs []types.MeetingDocument
	now := time.Now()
	for i := 0; i < s.monthsBack; i++ {
		month := now.AddDate(0, -i, 0)
		files := s.discoverMonthFiles(base, month.Year(), int(month.Month()))
		for _, fileURL := range files {
			docType, isoDate := ParseInfoCouncilFilename(fileURL)
			if docType == "" || isoDate == "" {
				continue
			}

			label := "Agenda"
			if docType == types.DocTypeMinutes {
				label = "Minutes"
			}
			docs = append(docs, types.MeetingDocument{
				SourceID:     s.src.ID,
				SourceName:   s.src.Name,
				DocumentType: docType,
				MeetingType:  meetingTypeOrDefault(s.src),
				Title:        fmt.Sprintf("Council Meeting %s - %s", label, isoDate),
				Date:         isoDate,
				URL:          fileURL,
				WebpageURL:   base,
			})
		}
	}

	return MergeDocuments(docs), nil
}

// discoverMonthFiles lists PDF URLs under Open/YYYY/MM for one month.
// Both the plain directory path and the RedirectToDoc listing are
// tried; some deployments only answer one of them.
func (s *InfoCouncilScraper) discoverMonthFiles(base string, year, month int) []string {
	ym := fmt.Sprintf("%d/%02d", year, month)
	candidates := []string{
		fmt.Sprintf("%s/Open/%s/", base, ym),
		fmt.Sprintf("%s/RedirectToDoc.aspx?URL=Open/%s/", base, ym),
	}

	var pdfs []string
	for _, listURL := range candidates {
		resp, err := s.client.R().Get(listURL)
		if err != nil {
			log.Printf("InfoCouncil listing failed for %s: %v", listURL, err)
			continue
		}
		if resp.StatusCode() != 200 {
			continue
		}
		pdfs = append(pdfs, extractPDFLinks(resp.String(), base, ym)...)
	}

	seen := make(map[string]struct{}, len(pdfs))
	var uniq []string
	for _, u := range pdfs {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		uniq = append(uniq, u)
	}
	return uniq
}

// extractPDFLinks pulls .pdf hrefs out of a listing body and resolves
// them against the host and month directory
func extractPDFLinks(body, base, ym string) []string {
	var out []string
	for _, m := range pdfHrefRe.FindAllStringSubmatch(body, -1) {
		href := m[1]
		switch {
		case strings.HasPrefix(href, "http"):
			out = append(out, href)
		case strings.HasPrefix(href, "/"):
			out = append(out, base+href)
		default:
			out = append(out, fmt.Sprintf("%s/Open/%s/%s", base, ym, href))
		}
	}
	return out
}

// ParseInfoCouncilFilename reads the document type and meeting date
// out of an InfoCouncil file URL. Filenames carry DDMMYYYY dates and
// an AGN (agenda) or MIN (minutes) marker. Returns empty strings when
// either piece is missing or the digits are not a real date.
func ParseInfoCouncilFilename(fileURL string) (docType, isoDate string) {
	low := strings.ToLower(fileURL)

	if m := ddmmyyyyRe.FindStringSubmatch(low); m != nil {
		candidate := fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
		if _, err := time.Parse("2006-01-02", candidate); err == nil {
			isoDate = candidate
		}
	}

	switch {
	case strings.Contains(low, "agn"):
		docType = types.DocTypeAgenda
	case strings.Contains(low, "min"):
		docType = types.DocTypeMinutes
	}
	return docType, isoDate
}

func meetingTypeOrDefault(src Source) string {
	if src.MeetingType != "" {
		return src.MeetingType
	}
	return "council"
}
