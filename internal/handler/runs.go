package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/middleware"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/repository"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/service"
)

type RunHandler struct {
	repo  *repository.RunRepo
	cache *service.CacheService
}

func NewRunHandler(repo *repository.RunRepo, cache *service.CacheService) *RunHandler {
	return &RunHandler{repo: repo, cache: cache}
}

// List handles GET /api/runs
// Returns all saved runs, newest first.
func (h *RunHandler) List(c fiber.Ctx) error {
	if h.repo == nil {
		return middleware.ErrorResponse(c, fiber.StatusServiceUnavailable, "NO_DATABASE", "Run history requires a database")
	}

	var runs []model.Run
	if h.cache.Get(c.Context(), service.RunsKey(), &runs) {
		return c.JSON(fiber.Map{"runs": runs, "cached": true})
	}

	runs, err := h.repo.ListRuns(c.Context())
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch runs")
	}

	h.cache.Set(c.Context(), service.RunsKey(), runs, service.RunsCacheTTL)
	return c.JSON(fiber.Map{"runs": runs})
}
