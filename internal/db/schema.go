package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema for run history. runs holds one record per scan execution;
// video_samples holds the flattened per-video rows tagged with the run id.
// Raw video ids are never stored.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		run_id     TEXT PRIMARY KEY,
		started_at TIMESTAMPTZ NOT NULL,
		days       INTEGER NOT NULL,
		keywords   TEXT NOT NULL,
		notes      TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS video_samples (
		id                      BIGSERIAL PRIMARY KEY,
		run_id                  TEXT NOT NULL REFERENCES runs(run_id),
		keyword                 TEXT NOT NULL,
		title                   TEXT NOT NULL,
		channel_id              TEXT,
		channel_title           TEXT NOT NULL,
		channel_subs            BIGINT NOT NULL DEFAULT 0,
		views                   BIGINT NOT NULL DEFAULT 0,
		likes                   BIGINT NOT NULL DEFAULT 0,
		comments                BIGINT NOT NULL DEFAULT 0,
		duration_seconds        BIGINT NOT NULL DEFAULT 0,
		thumbnail               TEXT,
		published_at            TIMESTAMPTZ,
		virality                INTEGER NOT NULL,
		monetization_likelihood INTEGER NOT NULL,
		saved_at                TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_video_samples_channel ON video_samples (channel_id, saved_at)`,
	`CREATE INDEX IF NOT EXISTS idx_video_samples_run ON video_samples (run_id)`,
}

// EnsureSchema creates the run-history tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
