package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"councilbot/schedule"
	"councilbot/types"
)

// QueueItemResponse is one scheduled slot in the preview
type QueueItemResponse struct {
	ScheduledFor string `json:"scheduled_for"`
	Source       string `json:"source"`
	DocumentType string `json:"document_type"`
	Date         string `json:"date"`
	Title        string `json:"title"`
	URL          string `json:"url"`
}

// RegisterQueueRoutes registers the posting queue preview endpoint.
func (s *Server) RegisterQueueRoutes(r *gin.Engine) {
	r.GET("/api/queue", s.handleGetQueue)
}

// handleGetQueue builds the schedule the next posting run would use
// and returns it without posting. Reads the scrape results file on
// every request so a fresh scrape shows up immediately.
func (s *Server) handleGetQueue(c *gin.Context) {
	results, err := types.LoadScrapeResults(s.resultsPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	queue := schedule.BuildSchedule(results.Documents, s.store, s.cfg, time.Now())

	items := make([]QueueItemResponse, 0, len(queue))
	for _, item := range queue {
		items = append(items, QueueItemResponse{
			ScheduledFor: item.ScheduledFor.Format("2006-01-02T15:04"),
			Source:       item.Doc.SourceName,
			DocumentType: item.Doc.DocumentType,
			Date:         item.Doc.Date,
			Title:        item.Doc.Title,
			URL:          item.Doc.URL,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"scraped_at": results.ScrapedAt,
		"documents":  len(results.Documents),
		"queue":      items,
	})
}
