package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/middleware"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/service"
)

type ScanHandler struct {
	svc *service.ScanService
}

func NewScanHandler(svc *service.ScanService) *ScanHandler {
	return &ScanHandler{svc: svc}
}

// Scan handles POST /api/scan
// Runs a full discovery scan for the requested keywords and returns the
// aggregated channel cards.
func (h *ScanHandler) Scan(c fiber.Ctx) error {
	var req model.ScanRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Request body must be valid JSON")
	}

	if msg := middleware.ValidateScanRequest(&req); msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_REQUEST", msg)
	}

	start := time.Now()
	result, err := h.svc.Run(c.Context(), req)

	if Metrics.ScanDuration != nil {
		Metrics.ScanDuration.Observe(time.Since(start).Seconds())
	}

	if err != nil {
		if Metrics.ScansTotal != nil {
			Metrics.ScansTotal.WithLabelValues("error").Inc()
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "SCAN_FAILED", "Scan could not be completed")
	}

	if Metrics.ScansTotal != nil {
		Metrics.ScansTotal.WithLabelValues("ok").Inc()
	}

	return c.JSON(result)
}
