// Package api exposes a small monitoring HTTP surface: queue preview,
// posted-set lookups, and a health check. It never posts anything.
package api

import (
	"github.com/gin-gonic/gin"

	"councilbot/archive"
	"councilbot/config"
	"councilbot/dedupe"
)

// Server carries the shared state the handlers need
type Server struct {
	store       *dedupe.Store
	resultsPath string
	cfg         config.Schedule
	arch        *archive.Archive
}

// NewRouter constructs a Gin engine with registered routes.
// arch may be nil when run archival is not configured.
func NewRouter(store *dedupe.Store, resultsPath string, cfg config.Schedule, arch *archive.Archive) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	s := &Server{store: store, resultsPath: resultsPath, cfg: cfg, arch: arch}
	s.RegisterHealthRoutes(r)
	s.RegisterQueueRoutes(r)
	s.RegisterDedupeRoutes(r)
	s.RegisterRunRoutes(r)
	return r
}
