package dedupe

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"councilbot/types"
)

const (
	testSource  = "Example Council"
	testTitle   = "Council Meeting Agenda - 26 August 2025"
	wrappedURL  = "https://example.infocouncil.biz/RedirectToDoc.aspx?URL=Open/2025/08/AGN.PDF"
	directURL   = "https://example.infocouncil.biz/Open/2025/08/AGN.PDF"
	unrelatedURL = "https://example.infocouncil.biz/Open/2025/09/MIN.PDF"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "posted.json")
}

func TestNewStoreAbsentFile(t *testing.T) {
	s := NewStore(tempStorePath(t))
	if s.Count() != 0 {
		t.Errorf("expected empty store, got %d hashes", s.Count())
	}
	if s.IsPosted(testSource, testTitle, directURL) {
		t.Errorf("empty store should report nothing as posted")
	}
}

func TestRecordThenCheck(t *testing.T) {
	path := tempStorePath(t)
	s := NewStore(path)

	if err := s.RecordPosted(testSource, testTitle, directURL, types.PostRef{URI: "at://x/1", CID: "cid1"}); err != nil {
		t.Fatalf("RecordPosted failed: %v", err)
	}

	if !s.IsPosted(testSource, testTitle, directURL) {
		t.Errorf("recorded document should be posted")
	}
	if s.IsPosted(testSource, testTitle, unrelatedURL) {
		t.Errorf("different URL should not be posted")
	}

	// Reload from disk and check persistence
	reloaded := NewStore(path)
	if !reloaded.IsPosted(testSource, testTitle, directURL) {
		t.Errorf("posted state should survive a reload")
	}
	ref, ok := reloaded.RefFor(testSource, testTitle, directURL)
	if !ok || ref.URI != "at://x/1" || ref.CID != "cid1" {
		t.Errorf("post ref not round-tripped: %+v ok=%v", ref, ok)
	}
}

func TestWrappedAndDirectURLsCollide(t *testing.T) {
	path := tempStorePath(t)
	s := NewStore(path)

	if err := s.RecordPosted(testSource, testTitle, wrappedURL, types.PostRef{}); err != nil {
		t.Fatalf("RecordPosted failed: %v", err)
	}
	if !s.IsPosted(testSource, testTitle, directURL) {
		t.Errorf("direct-link form should match a record made under the wrapped form")
	}
}

func TestLegacyRawHashStillMatches(t *testing.T) {
	// Simulate a record written by the legacy scheme: raw-URL hash only,
	// persisted as a bare JSON array.
	raw, _ := Hashes(testSource, testTitle, wrappedURL)
	path := tempStorePath(t)
	data, _ := json.Marshal([]string{raw})
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path)
	if s.Count() != 1 {
		t.Fatalf("legacy list not loaded, count=%d", s.Count())
	}
	if !s.IsPosted(testSource, testTitle, wrappedURL) {
		t.Errorf("legacy raw hash should still mark the document as posted")
	}
}

func TestRecordWritesBothHashVariants(t *testing.T) {
	path := tempStorePath(t)
	s := NewStore(path)
	if err := s.RecordPosted(testSource, testTitle, wrappedURL, types.PostRef{}); err != nil {
		t.Fatal(err)
	}

	raw, canon := Hashes(testSource, testTitle, wrappedURL)
	if raw == canon {
		t.Fatalf("raw and canonical hashes should differ for a wrapped URL")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var onDisk struct {
		Posted []string `json:"posted"`
	}
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatal(err)
	}
	found := map[string]bool{}
	for _, h := range onDisk.Posted {
		found[h] = true
	}
	if !found[raw] || !found[canon] {
		t.Errorf("both hash variants should be written, got %v", onDisk.Posted)
	}
}

func TestMalformedFileTreatedAsEmpty(t *testing.T) {
	path := tempStorePath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewStore(path)
	if s.Count() != 0 {
		t.Errorf("malformed file should yield an empty store, got %d", s.Count())
	}
}
