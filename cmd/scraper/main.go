package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"

	"github.com/iJaack/chain-guru/internal/config"
	"github.com/iJaack/chain-guru/internal/scrape"
	"github.com/iJaack/chain-guru/internal/store"
)

// One-shot pass over chains whose RPC measurement failed: render their
// block explorer headlessly, pull TPS / transaction-count figures, and
// mark chains whose explorer domain is gone as dead.

const maxConcurrent = 5

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	cfg := config.Load()

	if cfg.DatabaseURL == "" {
		logger.Error("DATABASE_URL is required")
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	targets, err := db.ListScrapeTargets(ctx, cfg.ScrapeLimit)
	if err != nil {
		logger.Error("failed to list scrape targets", "error", err)
		os.Exit(1)
	}
	logger.Info("scrape pass starting", "targets", len(targets))
	if len(targets) == 0 {
		return
	}

	explorer := scrape.NewExplorer()

	var (
		wg      sync.WaitGroup
		sem     = make(chan struct{}, maxConcurrent)
		mu      sync.Mutex
		updated int
		dead    int
	)

	for _, t := range targets {
		wg.Add(1)
		sem <- struct{}{}
		go func(m store.ChainMetric) {
			defer wg.Done()
			defer func() { <-sem }()

			tps, txCount, err := explorer.Fetch(ctx, m.ExplorerURL)
			switch {
			case errors.Is(err, scrape.ErrDomainGone):
				if err := db.MarkDead(ctx, m.ChainID); err != nil {
					logger.Error("mark dead failed", "chain", m.ChainID, "error", err)
					return
				}
				logger.Info("chain marked dead", "chain", m.ChainID, "name", m.ChainName)
				mu.Lock()
				dead++
				mu.Unlock()
			case err != nil:
				logger.Warn("scrape failed", "chain", m.ChainID, "name", m.ChainName, "error", err)
			case tps == 0 && txCount == 0:
				logger.Info("no metrics on explorer page", "chain", m.ChainID, "name", m.ChainName)
			default:
				if err := db.RecordScrape(ctx, m.ChainID, tps, txCount); err != nil {
					logger.Error("record scrape failed", "chain", m.ChainID, "error", err)
					return
				}
				logger.Info("scraped", "chain", m.ChainID, "name", m.ChainName, "tps", tps, "tx_count", txCount)
				mu.Lock()
				updated++
				mu.Unlock()
			}
		}(t)
	}
	wg.Wait()

	logger.Info("scrape pass complete", "updated", updated, "marked_dead", dead)
}
