package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store wraps the chain_metrics table that the measurement pipeline
// writes and the chains API serves.
type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Close() { s.pool.Close() }

func (s *Store) Ping(ctx context.Context) error { return s.pool.Ping(ctx) }

// ChainMetric is one measured chain row. Metric columns are nullable:
// a chain can be listed before any measurement succeeds.
type ChainMetric struct {
	ChainID       string    `json:"chain_id"`
	ChainName     string    `json:"chain_name"`
	RPCURL        string    `json:"rpc_url"`
	ExplorerURL   string    `json:"explorer_url,omitempty"`
	TPS10Min      *float64  `json:"tps_10min"`
	TotalTxCount  *float64  `json:"total_tx_count"`
	Status        string    `json:"status"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	HealthStatus  string    `json:"health_status"`
	IsDead        bool      `json:"is_dead"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

const chainColumns = `chain_id, chain_name, COALESCE(rpc_url, ''), COALESCE(explorer_url, ''),
	tps_10min, total_tx_count, COALESCE(status, ''), COALESCE(error_message, ''),
	COALESCE(health_status, ''), COALESCE(is_dead, false), COALESCE(last_updated_at, to_timestamp(0))`

// ListChainMetrics returns every tracked chain.
func (s *Store) ListChainMetrics(ctx context.Context) ([]ChainMetric, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+chainColumns+` FROM chain_metrics ORDER BY chain_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanChainMetrics(rows)
}

// ListScrapeTargets returns chains whose RPC measurement failed but
// that still have an explorer URL and are not known dead.
func (s *Store) ListScrapeTargets(ctx context.Context, limit int) ([]ChainMetric, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+chainColumns+`
		FROM chain_metrics
		WHERE status != 'success'
		  AND COALESCE(explorer_url, '') != ''
		  AND COALESCE(health_status, '') != 'Live (Scraped)'
		  AND COALESCE(is_dead, false) = false
		ORDER BY chain_id
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanChainMetrics(rows)
}

func scanChainMetrics(rows pgx.Rows) ([]ChainMetric, error) {
	var out []ChainMetric
	for rows.Next() {
		var m ChainMetric
		if err := rows.Scan(&m.ChainID, &m.ChainName, &m.RPCURL, &m.ExplorerURL,
			&m.TPS10Min, &m.TotalTxCount, &m.Status, &m.ErrorMessage,
			&m.HealthStatus, &m.IsDead, &m.LastUpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// RecordScrape writes explorer-scraped metrics for a chain. Zero values
// leave the stored metric untouched.
func (s *Store) RecordScrape(ctx context.Context, chainID string, tps, txCount float64) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE chain_metrics SET
			tps_10min = CASE WHEN $2 > 0 THEN $2 ELSE tps_10min END,
			total_tx_count = CASE WHEN $3 > 0 THEN $3 ELSE total_tx_count END,
			health_status = 'Live (Scraped)',
			is_dead = false,
			last_updated_at = now()
		WHERE chain_id = $1`,
		chainID, tps, txCount)
	return err
}

// MarkDead flags a chain whose explorer domain no longer resolves.
func (s *Store) MarkDead(ctx context.Context, chainID string) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE chain_metrics SET
			is_dead = true,
			health_status = 'Dead (Domain Gone)',
			last_updated_at = now()
		WHERE chain_id = $1`, chainID)
	return err
}

// CountChains returns (total, dead) row counts.
func (s *Store) CountChains(ctx context.Context) (total, dead int, err error) {
	err = s.pool.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE COALESCE(is_dead, false))
		FROM chain_metrics`).Scan(&total, &dead)
	return total, dead, err
}
