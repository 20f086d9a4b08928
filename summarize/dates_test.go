package summarize

import "testing"

func TestFormatLongDate(t *testing.T) {
	tests := map[string]string{
		"2025-09-02": "Tuesday, 2 September 2025",
		"2025-01-01": "Wednesday, 1 January 2025",
		"":           "",
		"not-a-date": "not-a-date",
	}
	for in, want := range tests {
		if got := FormatLongDate(in); got != want {
			t.Errorf("FormatLongDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRewriteDateInTitle(t *testing.T) {
	in := "Council Meeting Agenda - 2025-09-02"
	want := "Council Meeting Agenda - Tuesday, 2 September 2025"
	if got := RewriteDateInTitle(in); got != want {
		t.Errorf("RewriteDateInTitle(%q) = %q, want %q", in, got, want)
	}

	plain := "Council Meeting Agenda"
	if got := RewriteDateInTitle(plain); got != plain {
		t.Errorf("title without a date should pass through unchanged, got %q", got)
	}
}
