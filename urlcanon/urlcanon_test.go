package urlcanon

import "testing"

func TestCanonicalizeRedirectWrapper(t *testing.T) {
	wrapped := "https://darebin.infocouncil.biz/RedirectToDoc.aspx?URL=Open/2025/08/CO_20250826_AGN_1234.PDF"
	direct := "https://darebin.infocouncil.biz/Open/2025/08/CO_20250826_AGN_1234.PDF"

	if got := Canonicalize(wrapped); got != direct {
		t.Errorf("wrapped form not unwrapped: got %q, want %q", got, direct)
	}
	if Canonicalize(wrapped) != Canonicalize(direct) {
		t.Errorf("wrapped and direct forms should canonicalize identically")
	}
}

func TestCanonicalizeLowercaseQueryKey(t *testing.T) {
	wrapped := "https://example.infocouncil.biz/RedirectToDoc.aspx?url=Open/2025/01/MIN.PDF"
	want := "https://example.infocouncil.biz/Open/2025/01/MIN.PDF"
	if got := Canonicalize(wrapped); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCanonicalizeOpenLinkStripsQueryAndFragment(t *testing.T) {
	in := "https://example.infocouncil.biz/Open/2025/08/AGN.PDF?v=2#page=3"
	want := "https://example.infocouncil.biz/Open/2025/08/AGN.PDF"
	if got := Canonicalize(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCanonicalizeOtherURLKeepsQuery(t *testing.T) {
	in := "https://www.darebin.vic.gov.au/meetings?page=2#top"
	want := "https://www.darebin.vic.gov.au/meetings?page=2"
	if got := Canonicalize(in); got != want {
		t.Errorf("fragment should be the only thing stripped: got %q, want %q", got, want)
	}
}

func TestCanonicalizePreservesCase(t *testing.T) {
	in := "https://Example.infocouncil.biz/Open/2025/08/CO_AGN_MiXeD.PDF"
	got := Canonicalize(in)
	if got != "https://Example.infocouncil.biz/Open/2025/08/CO_AGN_MiXeD.PDF" &&
		got != "https://example.infocouncil.biz/Open/2025/08/CO_AGN_MiXeD.PDF" {
		t.Errorf("path case must be preserved, got %q", got)
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{
		"https://darebin.infocouncil.biz/RedirectToDoc.aspx?URL=Open/2025/08/AGN.PDF",
		"https://darebin.infocouncil.biz/Open/2025/08/AGN.PDF",
		"https://www.melbourne.vic.gov.au/docs/agenda.pdf?dl=1#s",
		"not a url at all",
		"",
	}
	for _, in := range inputs {
		once := Canonicalize(in)
		twice := Canonicalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
