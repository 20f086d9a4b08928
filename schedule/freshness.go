// Package schedule builds and executes the bounded round-robin posting
// queue: freshness filtering, per-source cooldowns, the global cadence
// and the sequential dry-run/live pass over the result.
package schedule

import (
	"time"

	"councilbot/config"
	"councilbot/types"
)

// IsFresh reports whether a document is worth posting relative to
// today. Minutes are fresh within a trailing window ending today;
// agendas within a trailing window through a leading window, so very
// recent and soon-upcoming meetings both qualify. "now" is injected so
// tests never depend on the wall clock.
func IsFresh(doc types.MeetingDocument, now time.Time, cfg config.Schedule) bool {
	d, err := time.ParseInLocation("2006-01-02", doc.Date, now.Location())
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if doc.DocumentType == types.DocTypeMinutes {
		earliest := today.AddDate(0, 0, -cfg.MinutesLastDays)
		return !d.Before(earliest) && !d.After(today)
	}

	// Agendas
	earliest := today.AddDate(0, 0, -cfg.AgendasLastDays)
	latest := today.AddDate(0, 0, cfg.AgendasNextDays)
	return !d.Before(earliest) && !d.After(latest)
}
