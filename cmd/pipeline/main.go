package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/madmax304/news-aggregator-test/internal/app"
	"github.com/madmax304/news-aggregator-test/internal/config"
	"github.com/madmax304/news-aggregator-test/internal/logging"
	"github.com/madmax304/news-aggregator-test/internal/pipeline"
)

// Runs the pipeline once and prints the result as JSON on stdout. Logs go to stderr.
func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	_, logCloser, err := logging.Setup(logging.Options{
		Output:     os.Stderr,
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		log.Fatalf("error setting up logging: %v", err)
	}
	defer logCloser.Close()

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("error building pipeline: %v", err)
	}
	defer a.Close()

	result, err := a.Pipeline.Run(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, pipeline.Message(err))
		a.Close()
		logCloser.Close()
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("error encoding result: %v", err)
	}
}
