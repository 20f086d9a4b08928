package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckPostedRequest identifies a document by the fields that feed its
// dedup hash
type CheckPostedRequest struct {
	Source string `json:"source" binding:"required"`
	Title  string `json:"title" binding:"required"`
	URL    string `json:"url" binding:"required"`
}

// CheckPostedResponse reports whether the document was already posted
type CheckPostedResponse struct {
	Posted bool   `json:"posted"`
	URI    string `json:"uri,omitempty"`
	CID    string `json:"cid,omitempty"`
}

// RegisterDedupeRoutes registers posted-set lookup endpoints.
func (s *Server) RegisterDedupeRoutes(r *gin.Engine) {
	g := r.Group("/api/dedupe")
	g.POST("/check", s.handleCheckPosted)
	g.GET("/count", s.handleGetCount)
}

func (s *Server) handleCheckPosted(c *gin.Context) {
	var req CheckPostedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := CheckPostedResponse{
		Posted: s.store.IsPosted(req.Source, req.Title, req.URL),
	}
	if ref, ok := s.store.RefFor(req.Source, req.Title, req.URL); ok {
		resp.URI = ref.URI
		resp.CID = ref.CID
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGetCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": s.store.Count()})
}
