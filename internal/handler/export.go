package handler

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/middleware"
)

type ExportHandler struct {
	exportDir string
}

func NewExportHandler(exportDir string) *ExportHandler {
	return &ExportHandler{exportDir: exportDir}
}

// Latest handles GET /api/export/latest
// Serves the most recent CSV export from the exports directory.
func (h *ExportHandler) Latest(c fiber.Ctx) error {
	entries, err := os.ReadDir(h.exportDir)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read export directory")
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".csv") {
			files = append(files, e.Name())
		}
	}

	if len(files) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "No export file available yet")
	}

	// Filenames carry a YYYYMMDDTHHMMSSZ stamp so lexicographic order is
	// chronological; latest is last.
	sort.Strings(files)
	latest := files[len(files)-1]
	path := filepath.Join(h.exportDir, latest)

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename="+latest)
	return c.SendFile(path)
}
