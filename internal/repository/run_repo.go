package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
)

type RunRepo struct {
	pool *pgxpool.Pool
}

func NewRunRepo(pool *pgxpool.Pool) *RunRepo {
	return &RunRepo{pool: pool}
}

// SaveRun upserts the run record and bulk-inserts its flattened sample rows
// in a single transaction. Nothing is committed if any insert fails, so a
// failed save never leaves partial run history behind.
func (r *RunRepo) SaveRun(ctx context.Context, run model.Run, rows []model.SampleRow) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO runs (run_id, started_at, days, keywords, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (run_id) DO UPDATE
		SET started_at = EXCLUDED.started_at,
		    days = EXCLUDED.days,
		    keywords = EXCLUDED.keywords,
		    notes = EXCLUDED.notes`,
		run.RunID, run.StartedAt, run.Days, strings.Join(run.Keywords, ","), run.Notes)
	if err != nil {
		return fmt.Errorf("upsert run: %w", err)
	}

	savedAt := time.Now().UTC()
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"video_samples"},
		[]string{
			"run_id", "keyword", "title", "channel_id", "channel_title",
			"channel_subs", "views", "likes", "comments", "duration_seconds",
			"thumbnail", "published_at", "virality", "monetization_likelihood",
			"saved_at",
		},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			row := rows[i]
			return []any{
				run.RunID, row.Keyword, row.Title, row.ChannelID, row.ChannelTitle,
				row.ChannelSubs, row.Views, row.Likes, row.Comments, row.DurationSeconds,
				row.Thumbnail, row.PublishedAt, row.Virality, row.MonetizationLikelihood,
				savedAt,
			}, nil
		}))
	if err != nil {
		return fmt.Errorf("insert samples: %w", err)
	}

	return tx.Commit(ctx)
}

// ListRuns returns all runs ordered by start time descending.
func (r *RunRepo) ListRuns(ctx context.Context) ([]model.Run, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT run_id, started_at, days, keywords, notes
		FROM runs
		ORDER BY started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		var run model.Run
		var keywords string
		if err := rows.Scan(&run.RunID, &run.StartedAt, &run.Days, &keywords, &run.Notes); err != nil {
			return nil, err
		}
		if keywords != "" {
			run.Keywords = strings.Split(keywords, ",")
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// SamplesForChannel returns all persisted rows for one channel ordered by
// save time ascending.
func (r *RunRepo) SamplesForChannel(ctx context.Context, channelID string) ([]model.SampleRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT run_id, keyword, title, channel_id, channel_title, channel_subs,
		       views, likes, comments, duration_seconds, thumbnail, published_at,
		       virality, monetization_likelihood, saved_at
		FROM video_samples
		WHERE channel_id = $1
		ORDER BY saved_at ASC`,
		channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []model.SampleRow
	for rows.Next() {
		var s model.SampleRow
		err := rows.Scan(
			&s.RunID, &s.Keyword, &s.Title, &s.ChannelID, &s.ChannelTitle, &s.ChannelSubs,
			&s.Views, &s.Likes, &s.Comments, &s.DurationSeconds, &s.Thumbnail, &s.PublishedAt,
			&s.Virality, &s.MonetizationLikelihood, &s.SavedAt,
		)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// DistinctChannels returns the channels present in the sample history with
// a non-empty title, latest title winning. Feeds the dashboard picker.
func (r *RunRepo) DistinctChannels(ctx context.Context) ([]model.ChannelRef, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT ON (channel_id) channel_id, channel_title
		FROM video_samples
		WHERE channel_id IS NOT NULL AND channel_title <> ''
		ORDER BY channel_id, saved_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var channels []model.ChannelRef
	for rows.Next() {
		var c model.ChannelRef
		if err := rows.Scan(&c.ChannelID, &c.ChannelTitle); err != nil {
			return nil, err
		}
		channels = append(channels, c)
	}
	return channels, rows.Err()
}

// ChannelTrend returns the per-save-time aggregates for one channel: total
// views and mean virality grouped by saved_at, ascending. This is the
// series behind the dashboard trend chart.
func (r *RunRepo) ChannelTrend(ctx context.Context, channelID string) ([]model.TrendPoint, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT saved_at, COALESCE(SUM(views), 0), COALESCE(AVG(virality), 0)
		FROM video_samples
		WHERE channel_id = $1
		GROUP BY saved_at
		ORDER BY saved_at ASC`,
		channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []model.TrendPoint
	for rows.Next() {
		var p model.TrendPoint
		if err := rows.Scan(&p.SavedAt, &p.Views, &p.AvgVirality); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
