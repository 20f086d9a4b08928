package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"councilbot/api"
	"councilbot/archive"
	"councilbot/config"
	"councilbot/dedupe"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	resultsPath := flag.String("results", config.DefaultResultsFile, "Path to the scraper results file")
	postedPath := flag.String("posted-file", config.DefaultPostedFile, "Path to the posted-document store")
	flag.Parse()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	store := dedupe.NewStore(*postedPath)
	if mirror := dedupe.NewRedisMirrorFromEnv(); mirror != nil {
		store.AttachMirror(mirror)
		defer mirror.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	arch, err := archive.NewFromEnv(ctx)
	cancel()
	if err != nil {
		log.Printf("Warning: archive unavailable: %v", err)
	}

	r := api.NewRouter(store, *resultsPath, config.ScheduleFromEnv(), arch)
	log.Printf("Starting monitor API on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  GET  /api/queue")
	log.Println("  POST /api/dedupe/check")
	log.Println("  GET  /api/dedupe/count")
	log.Println("  GET  /api/runs")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
