package pdftext

import "testing"

func TestIsPDF(t *testing.T) {
	if !isPDF([]byte("%PDF-1.7\n...")) {
		t.Errorf("PDF magic bytes not detected")
	}
	if isPDF([]byte("<!DOCTYPE html><html></html>")) {
		t.Errorf("HTML misdetected as PDF")
	}
	if isPDF(nil) {
		t.Errorf("empty body misdetected as PDF")
	}
}

func TestExtractPDFTextMalformedInput(t *testing.T) {
	// Anything that fails to parse must degrade to empty text
	if got := ExtractPDFText([]byte("%PDF-1.7 garbage")); got != "" {
		t.Errorf("malformed PDF should yield empty text, got %q", got)
	}
}
