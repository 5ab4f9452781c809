package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/config"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/db"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/handler"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/middleware"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/repository"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/router"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/service"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "viralscope-api")

	if cfg.YouTubeAPIKey == "" {
		log.Fatal("YOUTUBE_API_KEY is required")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()
	cache.OnHit = func() { handler.Metrics.CacheHits.Inc() }
	cache.OnMiss = func() { handler.Metrics.CacheMisses.Inc() }

	yt := youtube.NewClient(cfg.YouTubeAPIKey,
		youtube.WithObserver(handler.ObserveYouTubeRequest))

	repo := repository.NewRunRepo(pool)
	export := service.NewExportService(cfg.ExportDir)
	scan := service.NewScanService(yt, repo, export, cache, middleware.Logger)

	// Background scan worker, opt-in via SCAN_INTERVAL + SCAN_KEYWORDS.
	if cfg.ScanInterval > 0 {
		keywords := middleware.SplitKeywords(cfg.ScanKeywords)
		if len(keywords) > 0 {
			worker := service.NewScanWorker(scan, model.ScanRequest{
				Keywords:          keywords,
				Days:              cfg.ScanDays,
				ResultsPerKeyword: cfg.ScanResults,
				SaveToDB:          true,
			}, cfg.ScanInterval)
			go worker.Start(ctx)
			defer worker.Stop()
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      "ViralScope API",
		ServerHeader: "ViralScope",
	})

	h := &router.Handlers{
		Scan:    handler.NewScanHandler(scan),
		Run:     handler.NewRunHandler(repo, cache),
		Channel: handler.NewChannelHandler(repo, cache),
		Export:  handler.NewExportHandler(cfg.ExportDir),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}
	router.Setup(app, h, cfg.CORSOrigins)

	log.Printf("ViralScope backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
