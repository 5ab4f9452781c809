package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/middleware"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/repository"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/service"
)

type ChannelHandler struct {
	repo  *repository.RunRepo
	cache *service.CacheService
}

func NewChannelHandler(repo *repository.RunRepo, cache *service.CacheService) *ChannelHandler {
	return &ChannelHandler{repo: repo, cache: cache}
}

// List handles GET /api/channels
// Returns the distinct channels present in the sample history.
func (h *ChannelHandler) List(c fiber.Ctx) error {
	if h.repo == nil {
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "NO_DATABASE", "Channel history requires a database")
	}

	channels, err := h.repo.DistinctChannels(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch channels")
	}

	return c.JSON(fiber.Map{"channels": channels})
}

// Samples handles GET /api/channels/:channelId/samples
// Returns every persisted sample row for one channel, oldest first.
func (h *ChannelHandler) Samples(c fiber.Ctx) error {
	if h.repo == nil {
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "NO_DATABASE", "Channel history requires a database")
	}

	channelID, msg := middleware.ValidateChannelID(c.Params("channelId"))
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_CHANNEL_ID", msg)
	}

	var samples []model.SampleRow
	key := service.SamplesKey(channelID)
	if h.cache.Get(c.Context(), key, &samples) {
		return c.JSON(fiber.Map{"samples": samples, "cached": true})
	}

	samples, err := h.repo.SamplesForChannel(c.Context(), channelID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch samples")
	}

	h.cache.Set(c.Context(), key, samples, service.SamplesCacheTTL)
	return c.JSON(fiber.Map{"samples": samples})
}

// Trend handles GET /api/channels/:channelId/trend
// Returns the per-snapshot view and virality series for one channel.
func (h *ChannelHandler) Trend(c fiber.Ctx) error {
	if h.repo == nil {
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "NO_DATABASE", "Channel history requires a database")
	}

	channelID, msg := middleware.ValidateChannelID(c.Params("channelId"))
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_CHANNEL_ID", msg)
	}

	var points []model.TrendPoint
	key := service.TrendKey(channelID)
	if h.cache.Get(c.Context(), key, &points) {
		return c.JSON(fiber.Map{"trend": points, "cached": true})
	}

	points, err := h.repo.ChannelTrend(c.Context(), channelID)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch trend")
	}

	h.cache.Set(c.Context(), key, points, service.SamplesCacheTTL)
	return c.JSON(fiber.Map{"trend": points})
}
