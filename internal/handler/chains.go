package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/iJaack/chain-guru/internal/cache"
	"github.com/iJaack/chain-guru/internal/chain"
	"github.com/iJaack/chain-guru/internal/stats"
	"github.com/iJaack/chain-guru/internal/store"
)

const (
	chainsCacheKey = "chainsapi:chains"
	chainsCacheTTL = 60 * time.Second
)

// ListChains serves the raw snapshot consumed by the dashboard engine.
// Responses are cached in Redis when a cache is configured.
func ListChains(s *store.Store, c *cache.Cache, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if c != nil {
			if payload, ok := c.Get(r.Context(), chainsCacheKey); ok {
				_, _ = w.Write(payload)
				return
			}
		}

		records, err := loadRecords(r.Context(), s)
		if err != nil {
			logger.Error("list chains failed", "error", err)
			http.Error(w, `{"error":"failed to list chains"}`, http.StatusInternalServerError)
			return
		}

		payload, err := json.Marshal(records)
		if err != nil {
			http.Error(w, `{"error":"failed to encode chains"}`, http.StatusInternalServerError)
			return
		}
		if c != nil {
			c.Set(r.Context(), chainsCacheKey, payload, chainsCacheTTL)
		}
		_, _ = w.Write(payload)
	}
}

// Summary serves per-ecosystem aggregate sums over the live subset,
// priced at the default rate card.
func Summary(s *store.Store, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := loadRecords(r.Context(), s)
		if err != nil {
			logger.Error("summary failed", "error", err)
			http.Error(w, `{"error":"failed to compute summary"}`, http.StatusInternalServerError)
			return
		}
		live, _ := chain.Partition(chain.AnnotateAll(records))
		writeJSON(w, stats.Aggregate(live, stats.DefaultPricing()))
	}
}

func loadRecords(ctx context.Context, s *store.Store) ([]chain.Record, error) {
	metrics, err := s.ListChainMetrics(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]chain.Record, 0, len(metrics))
	for _, m := range metrics {
		records = append(records, recordFrom(m))
	}
	return records, nil
}

// recordFrom maps a stored row onto the wire shape. Ecosystem type is
// derived from the chain ID: EVM network IDs are purely numeric.
func recordFrom(m store.ChainMetric) chain.Record {
	eco := chain.NonEVM
	if isNumericID(m.ChainID) {
		eco = chain.EVM
	}
	health := m.HealthStatus
	if health == "" {
		health = "Unknown"
	}
	r := chain.Record{
		ChainID:      m.ChainID,
		ChainName:    m.ChainName,
		Type:         eco,
		HealthStatus: health,
		IsDead:       m.IsDead,
		RPCURL:       m.RPCURL,
		ExplorerURL:  m.ExplorerURL,
	}
	if m.TPS10Min != nil {
		r.TPS10Min = *m.TPS10Min
	}
	if m.TotalTxCount != nil {
		r.TotalTxCount = *m.TotalTxCount
	}
	return r
}

func isNumericID(id string) bool {
	if id == "" {
		return false
	}
	for _, c := range id {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
