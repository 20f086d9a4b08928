package schedule

import (
	"log"
	"os"
	"strings"
	"time"

	"councilbot/config"
	"councilbot/dedupe"
	"councilbot/summarize"
	"councilbot/types"
)

// TextExtractor supplies raw document text for content enrichment.
// Implementations return "" on any failure; enrichment is best-effort.
type TextExtractor interface {
	DocumentText(url string) string
}

// Poster publishes posts and thread replies to the network
type Poster interface {
	PostDocument(text string, url string) (types.PostRef, error)
	PostReply(parent, root types.PostRef, text string) (types.PostRef, error)
}

// Runner executes a scheduler run: build the queue, prepare content for
// each item and either preview or post it. Execution is a single
// sequential pass with no in-process waiting; real-world cadence comes
// from the assigned timestamps being consumed by an external cron-like
// trigger.
type Runner struct {
	Store     *dedupe.Store
	Extractor TextExtractor
	Poster    Poster
	Config    config.Schedule
	DryRun    bool
}

type prepared struct {
	basePost string
	summary  string
}

// Run builds the schedule and processes it item by item, returning the
// action list for logging, previews and the run archive. A single
// item's enrichment or posting failure never aborts the batch.
func (r *Runner) Run(docs []types.MeetingDocument, now time.Time) []types.Action {
	queue := BuildSchedule(docs, r.Store, r.Config, now)
	postSummary := summaryRepliesEnabled()

	actions := make([]types.Action, 0, len(queue))
	for _, item := range queue {
		p := r.prepare(item.Doc)

		action := types.Action{
			When:     item.ScheduledFor.Format("2006-01-02T15:04"),
			Source:   item.Doc.SourceName,
			DocType:  item.Doc.DocumentType,
			Date:     item.Doc.Date,
			Title:    item.Doc.Title,
			URL:      item.Doc.URL,
			BasePost: p.basePost,
			Summary:  p.summary,
		}

		if !r.DryRun {
			posted := r.post(item.Doc, p, postSummary)
			action.Posted = &posted
		}
		actions = append(actions, action)
	}
	return actions
}

// prepare builds the post content for one document. When the document
// text cannot be fetched the post is composed from title and date
// alone, with topics inferred from the title.
func (r *Runner) prepare(doc types.MeetingDocument) prepared {
	var text string
	if !config.EnvBool("FAST_PREVIEW") && r.Extractor != nil {
		text = r.Extractor.DocumentText(doc.URL)
	}

	var tocLines []string
	if text != "" {
		tocLines = summarize.RefineTOCLines(doc.SourceName, summarize.ExtractTOCLines(text))
	}

	topicSource := strings.Join(tocLines, "\n")
	if topicSource == "" {
		topicSource = text
	}
	if topicSource == "" {
		topicSource = doc.Title
	}
	topics := summarize.InferTopics(topicSource)

	basePost := summarize.ComposePost(doc.SourceName, doc.DocumentType, doc.Title, doc.Date, doc.URL, topics, doc.MeetingType)

	summaryText := text
	if summaryText == "" {
		summaryText = doc.Title
	}
	summary := summarize.BuildSummary(doc.SourceName, summaryText, tocLines, config.SummaryMinScore, summarize.DefaultMaxPhrases, config.MaxSummaryChars)

	return prepared{basePost: basePost, summary: summary}
}

// post publishes one item, records it and optionally threads the
// summary as a reply. Posting failures are recorded, not retried.
func (r *Runner) post(doc types.MeetingDocument, p prepared, withSummary bool) bool {
	if r.Poster == nil {
		return false
	}

	ref, err := r.Poster.PostDocument(p.basePost, doc.URL)
	if err != nil {
		log.Printf("Failed to post %s (%s): %v", doc.Title, doc.SourceName, err)
		return false
	}

	if err := r.Store.RecordPosted(doc.SourceName, doc.Title, doc.URL, ref); err != nil {
		log.Printf("Warning: posted but failed to record %s: %v", doc.Title, err)
	}

	if withSummary && p.summary != "" {
		if _, err := r.Poster.PostReply(ref, ref, p.summary); err != nil {
			log.Printf("Warning: summary reply failed for %s: %v", doc.Title, err)
		}
	}
	return true
}

// summaryRepliesEnabled defaults to on; set POST_SUMMARY=0 to disable
func summaryRepliesEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("POST_SUMMARY"))) {
	case "", "1", "true", "yes":
		return true
	}
	return false
}
