package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"councilbot/archive"
	"councilbot/bluesky"
	"councilbot/config"
	"councilbot/dedupe"
	"councilbot/pdftext"
	"councilbot/schedule"
	"councilbot/scrapers"
	"councilbot/types"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	resultsPath := flag.String("results", config.DefaultResultsFile, "Path to the scraper results file")
	postedPath := flag.String("posted-file", config.DefaultPostedFile, "Path to the posted-document store")
	sourcesPath := flag.String("sources", "sources.json", "Path to the source registry (used with -scrape)")
	runScrape := flag.Bool("scrape", false, "Run the scrapers and refresh the results file before scheduling")
	live := flag.Bool("live", false, "Post for real; the default is a dry-run preview")
	maxPosts := flag.Int("max-posts", 0, "Override the max posts per run")
	flag.Parse()

	if *runScrape {
		if err := scrapeToFile(*sourcesPath, *resultsPath); err != nil {
			log.Fatalf("Scrape failed: %v", err)
		}
	}

	results, err := types.LoadScrapeResults(*resultsPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	log.Printf("Loaded %d documents from %s", len(results.Documents), *resultsPath)

	cfg := config.ScheduleFromEnv()
	if *maxPosts > 0 {
		cfg.MaxPostsPerRun = *maxPosts
	}

	store := dedupe.NewStore(*postedPath)
	if mirror := dedupe.NewRedisMirrorFromEnv(); mirror != nil {
		store.AttachMirror(mirror)
		defer mirror.Close()
	}
	log.Printf("Posted store has %d recorded hashes", store.Count())

	runner := &schedule.Runner{
		Store:     store,
		Extractor: pdftext.NewExtractor(),
		Config:    cfg,
		DryRun:    !*live,
	}
	if *live {
		poster, err := bluesky.NewPosterFromEnv()
		if err != nil {
			log.Fatalf("%v", err)
		}
		runner.Poster = poster
	}

	ranAt := time.Now()
	actions := runner.Run(results.Documents, ranAt)
	printActions(actions, *live)

	archiveRun(ranAt, actions)
}

// scrapeToFile runs every registered source and writes the merged
// results file the scheduler reads
func scrapeToFile(sourcesPath, resultsPath string) error {
	sources, err := scrapers.LoadSources(sourcesPath)
	if err != nil {
		return err
	}
	log.Printf("Scraping %d sources", len(sources))

	results := scrapers.ScrapeAll(sources)
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if err := os.WriteFile(resultsPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}
	log.Printf("Wrote %d documents to %s", len(results.Documents), resultsPath)
	return nil
}

// printActions prints one block per queued item. Dry runs get the full
// preview; live runs add the per-item outcome.
func printActions(actions []types.Action, live bool) {
	if len(actions) == 0 {
		fmt.Println("Nothing to post: no fresh, unposted documents.")
		return
	}

	for i, a := range actions {
		fmt.Printf("[%d/%d] %s  %s  %s  %s\n", i+1, len(actions), a.When, a.Source, a.DocType, a.Date)
		fmt.Println(a.BasePost)
		if a.Summary != "" {
			fmt.Println(a.Summary)
		} else {
			fmt.Println("(none)")
		}
		if live && a.Posted != nil {
			if *a.Posted {
				fmt.Println("posted: ok")
			} else {
				fmt.Println("posted: FAILED")
			}
		}
		fmt.Println()
	}
}

// archiveRun uploads the action list to S3 when a bucket is configured
func archiveRun(ranAt time.Time, actions []types.Action) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	arch, err := archive.NewFromEnv(ctx)
	if err != nil {
		log.Printf("Warning: archive unavailable: %v", err)
		return
	}
	if arch == nil {
		return
	}

	key, err := arch.UploadRun(ctx, ranAt, actions)
	if err != nil {
		log.Printf("Warning: run archive upload failed: %v", err)
		return
	}
	log.Printf("Archived run to %s", key)
}
