package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"councilbot/config"
	"councilbot/dedupe"
	"councilbot/pdftext"
	"councilbot/preview/tui"
	"councilbot/schedule"
	"councilbot/types"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	resultsPath := flag.String("results", config.DefaultResultsFile, "Path to the scraper results file")
	postedPath := flag.String("posted-file", config.DefaultPostedFile, "Path to the posted-document store")
	fast := flag.Bool("fast", false, "Skip document downloads; compose from titles only")
	flag.Parse()

	if *fast {
		os.Setenv("FAST_PREVIEW", "1")
	}

	results, err := types.LoadScrapeResults(*resultsPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	runner := &schedule.Runner{
		Store:     dedupe.NewStore(*postedPath),
		Extractor: pdftext.NewExtractor(),
		Config:    config.ScheduleFromEnv(),
		DryRun:    true,
	}
	actions := runner.Run(results.Documents, time.Now())

	// Create the tea program
	program := tea.NewProgram(tui.NewModel(actions))

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
