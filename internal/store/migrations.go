package store

import "context"

// chain_metrics holds one row per tracked chain: RPC measurement
// results plus the explorer/liveness columns written by the scraper.
const migrationSQL = `
CREATE TABLE IF NOT EXISTS chain_metrics (
    chain_id        TEXT PRIMARY KEY,
    chain_name      TEXT NOT NULL DEFAULT '',
    rpc_url         TEXT,
    explorer_url    TEXT,
    tps_10min       DOUBLE PRECISION,
    total_tx_count  DOUBLE PRECISION,
    status          TEXT,
    error_message   TEXT,
    health_status   TEXT,
    is_dead         BOOLEAN NOT NULL DEFAULT false,
    last_updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_chain_metrics_is_dead ON chain_metrics (is_dead);
CREATE INDEX IF NOT EXISTS idx_chain_metrics_status ON chain_metrics (status);
`

func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, migrationSQL)
	return err
}
