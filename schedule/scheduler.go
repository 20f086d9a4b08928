package schedule

import (
	"sort"
	"time"

	"councilbot/config"
	"councilbot/dedupe"
	"councilbot/types"
)

// BuildSchedule turns the current document set into an ordered posting
// queue. Candidates are fresh, unposted documents sorted newest first,
// grouped per source, and interleaved round-robin. Each slot honours
// both the per-source cooldown and the global one-post-per-cadence
// step, taking the later of the two candidate times. The queue is
// bounded by cfg.MaxPostsPerRun and is never persisted: it is
// recomputed on every run.
func BuildSchedule(docs []types.MeetingDocument, store *dedupe.Store, cfg config.Schedule, now time.Time) []types.QueueItem {
	candidates := selectCandidates(docs, store, cfg, now)

	perSource := make(map[string][]types.MeetingDocument)
	var rotation []string
	for _, doc := range candidates {
		if _, seen := perSource[doc.SourceName]; !seen {
			rotation = append(rotation, doc.SourceName)
		}
		perSource[doc.SourceName] = append(perSource[doc.SourceName], doc)
	}
	sort.Strings(rotation)

	var scheduled []types.QueueItem
	lastPerSource := make(map[string]time.Time)
	t := now

	for len(rotation) > 0 && len(scheduled) < cfg.MaxPostsPerRun {
		name := rotation[0]
		rotation = rotation[1:]

		queue := perSource[name]
		if len(queue) == 0 {
			continue
		}

		slot := t
		if last, ok := lastPerSource[name]; ok {
			if cooled := last.Add(cfg.Cooldown); cooled.After(slot) {
				slot = cooled
			}
		}

		doc := queue[0]
		perSource[name] = queue[1:]
		scheduled = append(scheduled, types.QueueItem{Doc: doc, ScheduledFor: slot})
		lastPerSource[name] = slot

		if len(perSource[name]) > 0 {
			rotation = append(rotation, name)
		}

		// Global cadence steps from the last assigned slot, not per source
		t = slot.Add(cfg.Cadence)
	}

	// Interleaving already yields monotonic times; the sort is defensive
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].ScheduledFor.Before(scheduled[j].ScheduledFor)
	})
	return scheduled
}

// selectCandidates filters to fresh, unposted documents, newest first
func selectCandidates(docs []types.MeetingDocument, store *dedupe.Store, cfg config.Schedule, now time.Time) []types.MeetingDocument {
	var candidates []types.MeetingDocument
	for _, doc := range docs {
		if !IsFresh(doc, now, cfg) {
			continue
		}
		if store.IsPosted(doc.SourceName, doc.Title, doc.URL) {
			continue
		}
		candidates = append(candidates, doc)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Date > candidates[j].Date
	})
	return candidates
}
