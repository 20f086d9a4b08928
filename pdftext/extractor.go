// Package pdftext turns a document URL into raw text for the
// summarization pipeline. Failures of any kind yield empty text: a
// post is still composed from title and date, so extraction here is
// strictly best-effort.
package pdftext

import (
	"bytes"
	"log"
	"net/url"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	readability "github.com/go-shiori/go-readability"
	"github.com/ledongthuc/pdf"
)

const (
	downloadTimeout = 30 * time.Second

	// Some council hosts refuse requests without a browser user agent
	browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Extractor downloads council documents and extracts their text
type Extractor struct {
	client *resty.Client
}

// NewExtractor builds an extractor whose HTTP client carries a browser
// user agent and the cloudflare bypass transport, since several council
// sites sit behind anti-bot protection.
func NewExtractor() *Extractor {
	client := resty.New().
		SetTimeout(downloadTimeout).
		SetHeader("User-Agent", browserUA)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	return &Extractor{client: client}
}

// DocumentText downloads a document and returns its extracted text,
// or "" on any failure
func (e *Extractor) DocumentText(docURL string) string {
	body := e.download(docURL)
	if len(body) == 0 {
		return ""
	}
	if isPDF(body) {
		return ExtractPDFText(body)
	}
	return extractHTMLText(body, docURL)
}

func (e *Extractor) download(docURL string) []byte {
	resp, err := e.client.R().Get(docURL)
	if err != nil {
		log.Printf("Failed to download %s: %v", docURL, err)
		return nil
	}
	if resp.StatusCode() != 200 {
		log.Printf("Download of %s returned status %d", docURL, resp.StatusCode())
		return nil
	}
	return resp.Body()
}

// isPDF sniffs the magic bytes rather than trusting Content-Type,
// which InfoCouncil hosts frequently get wrong
func isPDF(body []byte) bool {
	return bytes.HasPrefix(body, []byte("%PDF"))
}

// ExtractPDFText pulls text from a PDF, preserving row structure so the
// TOC extractor can see one agenda item per line. Malformed PDFs yield
// whatever pages parse cleanly.
func ExtractPDFText(body []byte) (text string) {
	// The pdf package panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PDF extraction panicked: %v", r)
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		log.Printf("Failed to parse PDF: %v", err)
		return ""
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for i, word := range row.Content {
				if i > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(word.S)
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// extractHTMLText handles councils that publish meeting documents as
// web pages instead of PDFs
func extractHTMLText(body []byte, docURL string) string {
	parsed, err := url.Parse(docURL)
	if err != nil {
		parsed = nil
	}
	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		log.Printf("Readability extraction failed for %s: %v", docURL, err)
		return ""
	}
	return article.TextContent
}
