package service

import (
	"context"
	"log"
	"time"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
)

// ScanWorker periodically runs a scan with a fixed request so trend history
// accumulates without anyone clicking the dashboard. One tick runs
// immediately on startup, then every interval.
type ScanWorker struct {
	svc      *ScanService
	req      model.ScanRequest
	interval time.Duration
	stopCh   chan struct{}
}

// NewScanWorker creates a worker that ticks every interval.
func NewScanWorker(svc *ScanService, req model.ScanRequest, interval time.Duration) *ScanWorker {
	return &ScanWorker{
		svc:      svc,
		req:      req,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic scan loop.
func (w *ScanWorker) Start(ctx context.Context) {
	log.Printf("scan-worker: starting (interval=%s, keywords=%d)", w.interval, len(w.req.Keywords))

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Println("scan-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Println("scan-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *ScanWorker) Stop() {
	close(w.stopCh)
}

func (w *ScanWorker) tick(ctx context.Context) {
	start := time.Now()

	result, err := w.svc.Run(ctx, w.req)
	if err != nil {
		log.Printf("scan-worker: scan failed: %v", err)
		return
	}

	elapsed := time.Since(start)
	log.Printf("scan-worker: tick complete: run %s, %d channels, %d fetch errors (%s)",
		result.RunID, len(result.Channels), len(result.Errors), elapsed.Round(time.Millisecond))
}
