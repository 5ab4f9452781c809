// Package main provides the viralscope-scan CLI entry point: a one-shot
// discovery scan without the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/config"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/db"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/middleware"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/repository"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/service"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/youtube"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command for the scan CLI.
func newRootCmd() *cobra.Command {
	var (
		keywords []string
		days     int
		results  int
		minSubs  int64
		maxAge   int
		shorts   bool
		country  string
		csvOut   bool
		save     bool
		note     string
	)

	cmd := &cobra.Command{
		Use:     "viralscope-scan",
		Short:   "Run a one-shot viral topic discovery scan",
		Long:    "Scans YouTube for recent videos matching the given keywords, aggregates per-channel virality and monetization estimates, and optionally exports CSV or saves run history.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cfg.YouTubeAPIKey == "" {
				return fmt.Errorf("YOUTUBE_API_KEY is not set")
			}

			req := model.ScanRequest{
				Keywords:            keywords,
				Days:                days,
				ResultsPerKeyword:   results,
				MinSubs:             minSubs,
				MaxChannelAgeMonths: maxAge,
				OnlyShorts:          shorts,
				CountryFilter:       country,
				AutoExportCSV:       csvOut,
				SaveToDB:            save,
				Notes:               note,
			}
			if msg := middleware.ValidateScanRequest(&req); msg != "" {
				return fmt.Errorf("invalid request: %s", msg)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			middleware.InitLogger(cfg.LogLevel, "viralscope-scan")

			var repo *repository.RunRepo
			if save {
				pool, err := db.NewPool(ctx, cfg.DatabaseURL)
				if err != nil {
					return fmt.Errorf("connect to database: %w", err)
				}
				defer pool.Close()
				if err := db.EnsureSchema(ctx, pool); err != nil {
					return fmt.Errorf("ensure schema: %w", err)
				}
				repo = repository.NewRunRepo(pool)
			}

			yt := youtube.NewClient(cfg.YouTubeAPIKey)
			export := service.NewExportService(cfg.ExportDir)
			cache := &service.CacheService{}
			scan := service.NewScanService(yt, repo, export, cache, middleware.Logger)

			result, err := scan.Run(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s: %d channels from %d keywords\n",
				result.RunID, len(result.Channels), len(req.Keywords))
			for _, ch := range result.Channels {
				fmt.Fprintf(out, "  %-40s subs=%-9d samples=%-3d virality=%-3d monetization=%d\n",
					ch.ChannelTitle, ch.Subs, ch.SampleCount, ch.HighestVirality, ch.MonetizationLikelihood)
			}
			if result.CSVFile != "" {
				fmt.Fprintf(out, "CSV written to %s\n", result.CSVFile)
			}
			if result.Saved {
				fmt.Fprintln(out, "Run saved to database")
			}
			for _, e := range result.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", e)
			}
			return nil
		},
	}

	cmd.SetVersionTemplate("viralscope-scan version {{.Version}}\n")

	cmd.Flags().StringSliceVarP(&keywords, "keywords", "k", nil, "Keywords to scan (repeatable or comma separated)")
	cmd.Flags().IntVarP(&days, "days", "d", middleware.DefaultDays, "Recency window in days")
	cmd.Flags().IntVarP(&results, "results", "r", middleware.DefaultResults, "Results per keyword")
	cmd.Flags().Int64Var(&minSubs, "min-subs", 0, "Drop channels below this subscriber count")
	cmd.Flags().IntVar(&maxAge, "max-age", 0, "Only keep channels at most this many months old (0 = no limit)")
	cmd.Flags().BoolVar(&shorts, "shorts", false, "Only keep channels whose average sample duration is under 60 seconds")
	cmd.Flags().StringVar(&country, "country", "", "Only keep channels from this country code")
	cmd.Flags().BoolVar(&csvOut, "csv", false, "Write a CSV export of the flattened rows")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the run and its sample rows to the database")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note stored with the run")

	return cmd
}
