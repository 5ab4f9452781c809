package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/repository"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/youtube"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/pkg/codec"
)

// ScanService runs the keyword-scan-and-aggregate pipeline: fetch per
// keyword, accumulate per channel, aggregate once over the complete map,
// flatten, then persist and export.
//
// The two-phase structure is an ordering invariant, not an implementation
// detail: channel metrics must reflect videos gathered from all keywords,
// so aggregation never runs per keyword.
type ScanService struct {
	yt     *youtube.Client
	repo   *repository.RunRepo
	export *ExportService
	cache  *CacheService
	logger zerolog.Logger
}

// NewScanService wires the pipeline. repo, export and cache may each be nil
// to disable persistence, CSV export or cache invalidation respectively.
func NewScanService(yt *youtube.Client, repo *repository.RunRepo, export *ExportService, cache *CacheService, logger zerolog.Logger) *ScanService {
	return &ScanService{yt: yt, repo: repo, export: export, cache: cache, logger: logger}
}

// Run executes one complete scan. A failed or empty fetch for one keyword
// is reported in the result's Errors and contributes zero candidates; the
// run continues with the remaining keywords. Persistence and export only
// happen after the full aggregation succeeded, and a failed save commits
// nothing.
func (s *ScanService) Run(ctx context.Context, req model.ScanRequest) (*model.ScanResult, error) {
	now := time.Now().UTC()
	publishedAfter := now.AddDate(0, 0, -req.Days)

	acc := NewChannelAccumulator()
	var fetchErrors []string

	for i, keyword := range req.Keywords {
		s.logger.Info().
			Int("n", i+1).
			Int("total", len(req.Keywords)).
			Str("keyword", keyword).
			Msg("searching")

		candidates, err := s.yt.Search(ctx, keyword, publishedAfter, req.ResultsPerKeyword)
		if err != nil {
			s.logger.Warn().Err(err).Str("keyword", keyword).Msg("search failed, keyword skipped")
			fetchErrors = append(fetchErrors, fmt.Sprintf("search %q: %v", keyword, err))
			continue
		}
		if len(candidates) == 0 {
			continue
		}

		var videoIDs, channelIDs []string
		keywordByVideo := make(map[string]string, len(candidates))
		for _, item := range candidates {
			vid := item.ID.VideoID
			if vid == "" {
				continue
			}
			videoIDs = append(videoIDs, vid)
			keywordByVideo[vid] = keyword
			if cid := item.Snippet.ChannelID; cid != "" {
				channelIDs = append(channelIDs, cid)
				acc.Touch(cid, item.Snippet.ChannelTitle)
			}
		}
		if len(videoIDs) == 0 {
			continue
		}

		details, err := s.yt.Videos(ctx, videoIDs)
		if err != nil {
			s.logger.Warn().Err(err).Str("keyword", keyword).Msg("video details failed, keyword skipped")
			fetchErrors = append(fetchErrors, fmt.Sprintf("videos %q: %v", keyword, err))
			continue
		}

		// Channel metadata is fetched only for channels whose subscriber
		// count is still unknown; a failure here leaves those channels with
		// absent metadata, which the aggregation filters treat as unknown.
		if need := acc.NeedsMetadata(channelIDs); len(need) > 0 {
			chans, err := s.yt.Channels(ctx, need)
			if err != nil {
				s.logger.Warn().Err(err).Int("channels", len(need)).Msg("channel metadata fetch failed")
				fetchErrors = append(fetchErrors, fmt.Sprintf("channels for %q: %v", keyword, err))
			} else {
				for _, ch := range chans {
					subs := parseCount(ch.Statistics.SubscriberCount)
					acc.ApplyMetadata(
						ch.ID,
						ch.Snippet.Title,
						&subs,
						codec.ParseTimestamp(ch.Snippet.PublishedAt),
						nonEmpty(ch.Snippet.Country),
						ch.Snippet.Thumbnails.DefaultURL(),
					)
				}
			}
		}

		for _, detail := range details {
			rec := NormalizeVideo(detail, keywordByVideo, acc, now)
			// Records without a channel id never reach channel-level output.
			if cid := detail.Snippet.ChannelID; cid != "" {
				acc.Append(cid, rec.ChannelTitle, rec)
			}
		}
	}

	cards := BuildChannelSummaries(acc, AggregateFilters{
		MinSubs:             req.MinSubs,
		MaxChannelAgeMonths: req.MaxChannelAgeMonths,
		OnlyShorts:          req.OnlyShorts,
		Country:             req.CountryFilter,
	}, now)
	rows := FlattenSummaries(cards)

	result := &model.ScanResult{
		RunID:     strings.ReplaceAll(uuid.NewString(), "-", ""),
		StartedAt: now,
		Channels:  cards,
		Errors:    fetchErrors,
	}

	if req.AutoExportCSV && len(rows) > 0 && s.export != nil {
		path, err := s.export.WriteRunCSV(rows, now)
		if err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
		result.CSVFile = path
	}

	if req.SaveToDB && len(rows) > 0 && s.repo != nil {
		run := model.Run{
			RunID:     result.RunID,
			StartedAt: now,
			Days:      req.Days,
			Keywords:  req.Keywords,
			Notes:     req.Notes,
		}
		if err := s.repo.SaveRun(ctx, run, rows); err != nil {
			return nil, fmt.Errorf("save run: %w", err)
		}
		result.Saved = true
		if s.cache != nil {
			s.cache.InvalidateRuns(ctx)
		}
	}

	if req.IncludeRows {
		result.Rows = rows
	}

	s.logger.Info().
		Str("run_id", result.RunID).
		Int("channels", len(cards)).
		Int("rows", len(rows)).
		Int("fetch_errors", len(fetchErrors)).
		Bool("saved", result.Saved).
		Msg("scan complete")

	return result, nil
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
