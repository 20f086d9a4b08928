package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultRunListLimit = 50

// RegisterRunRoutes registers the archived-run listing endpoint.
func (s *Server) RegisterRunRoutes(r *gin.Engine) {
	r.GET("/api/runs", s.handleListRuns)
}

// handleListRuns lists archived run keys from S3. Returns 503 when no
// archive bucket is configured. Query params: limit (int, optional)
func (s *Server) handleListRuns(c *gin.Context) {
	if s.arch == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "run archive not configured"})
		return
	}

	limit := int32(defaultRunListLimit)
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = int32(n)
		}
	}

	keys, err := s.arch.ListRuns(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": keys})
}
