// ai-rankings scrapes three public AI-model leaderboards and writes a
// normalized JSON snapshot to data.json.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/reccea/ai-rankings/config"
	"github.com/reccea/ai-rankings/fetcher"
	"github.com/reccea/ai-rankings/snapshot"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := newLogger()
	defer log.Sync() //nolint:errcheck

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 50)
	fmt.Println(rule)
	fmt.Println("AI Leaderboard Scraper")
	fmt.Println(rule)

	f := fetcher.New(fetcher.Options{
		UserAgent:  cfg.Fetcher.UserAgent,
		ChromePath: cfg.Fetcher.ChromePath,
		Timeout:    cfg.Fetcher.Timeout(),
		Settle:     cfg.Fetcher.Settle(),
	})

	snap := snapshot.Build(context.Background(), f.Render, log)
	if err := snap.WriteFile(cfg.OutputPath); err != nil {
		return err
	}

	fmt.Println(rule)
	fmt.Println("Scraping complete!")
	fmt.Printf("Intelligence Index: %d models\n", len(snap.IntelligenceIndex))
	fmt.Printf("SWE-Bench: %d models\n", len(snap.SWEBench))
	fmt.Printf("HLE: %d models\n", len(snap.HLE))
	fmt.Printf("Data saved to %s\n", cfg.OutputPath)
	fmt.Println(rule)
	return nil
}

// newLogger builds a console logger on stdout. Errors go to stdout too;
// this tool has no machine-readable log stream.
func newLogger() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zapcore.InfoLevel,
	)
	return zap.New(core)
}
