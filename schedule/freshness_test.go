package schedule

import (
	"testing"
	"time"

	"councilbot/config"
	"councilbot/types"
)

var testToday = time.Date(2025, 8, 26, 10, 0, 0, 0, time.UTC)

func defaultConfig() config.Schedule {
	return config.Schedule{
		MinutesLastDays: config.DefaultMinutesLastDays,
		AgendasLastDays: config.DefaultAgendasLastDays,
		AgendasNextDays: config.DefaultAgendasNextDays,
		Cooldown:        config.DefaultCooldownHours * time.Hour,
		Cadence:         config.DefaultCadenceHours * time.Hour,
		MaxPostsPerRun:  config.DefaultMaxPostsPerRun,
	}
}

func docOn(docType, date string) types.MeetingDocument {
	return types.MeetingDocument{
		SourceName:   "Example Council",
		DocumentType: docType,
		Title:        "Council Meeting " + docType,
		Date:         date,
		URL:          "https://example.org/" + docType + "/" + date + ".pdf",
	}
}

func TestMinutesTrailingWindow(t *testing.T) {
	cfg := defaultConfig()
	tests := []struct {
		date string
		want bool
	}{
		{"2025-08-26", true},  // today
		{"2025-08-19", true},  // exactly 7 days ago
		{"2025-08-18", false}, // 8 days ago
		{"2025-08-27", false}, // minutes cannot be in the future
	}
	for _, tt := range tests {
		if got := IsFresh(docOn(types.DocTypeMinutes, tt.date), testToday, cfg); got != tt.want {
			t.Errorf("minutes dated %s: fresh=%v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestAgendaWindow(t *testing.T) {
	cfg := defaultConfig()
	tests := []struct {
		date string
		want bool
	}{
		{"2025-08-26", true},  // today
		{"2025-09-05", true},  // exactly 10 days ahead
		{"2025-09-06", false}, // 11 days ahead
		{"2025-08-19", true},  // held 7 days ago
		{"2025-08-18", false}, // stale
	}
	for _, tt := range tests {
		if got := IsFresh(docOn(types.DocTypeAgenda, tt.date), testToday, cfg); got != tt.want {
			t.Errorf("agenda dated %s: fresh=%v, want %v", tt.date, got, tt.want)
		}
	}
}

func TestUnparseableDateNotFresh(t *testing.T) {
	doc := docOn(types.DocTypeAgenda, "26 August 2025")
	if IsFresh(doc, testToday, defaultConfig()) {
		t.Errorf("an unparseable date should never be fresh")
	}
}

func TestWindowsAreConfigurable(t *testing.T) {
	cfg := defaultConfig()
	cfg.MinutesLastDays = 1
	if IsFresh(docOn(types.DocTypeMinutes, "2025-08-23"), testToday, cfg) {
		t.Errorf("shrunk window should exclude 3-day-old minutes")
	}
	cfg.AgendasNextDays = 30
	if !IsFresh(docOn(types.DocTypeAgenda, "2025-09-20"), testToday, cfg) {
		t.Errorf("widened window should include a 25-day-out agenda")
	}
}
