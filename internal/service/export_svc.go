package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/pkg/codec"
)

// csvHeader is the fixed export column order. The channel id is stored in
// the database but deliberately left out of the CSV.
var csvHeader = []string{
	"keyword",
	"title",
	"channel_title",
	"channel_subs",
	"views",
	"likes",
	"comments",
	"duration_seconds",
	"thumbnail",
	"published_at",
	"virality",
	"monetization_likelihood",
}

// ExportService writes flattened run rows as CSV files into the export
// directory.
type ExportService struct {
	dir string
}

func NewExportService(dir string) *ExportService {
	return &ExportService{dir: dir}
}

// Dir returns the export directory path.
func (e *ExportService) Dir() string {
	return e.dir
}

// WriteRunCSV serializes the rows to a timestamped CSV file and returns its
// path. The filename carries the run start stamp plus a short random suffix
// so repeated runs within one second never collide.
func (e *ExportService) WriteRunCSV(rows []model.SampleRow, startedAt time.Time) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	stamp := startedAt.UTC().Format("20060102T150405Z")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	path := filepath.Join(e.dir, fmt.Sprintf("viral_scope_run_%s_%s.csv", stamp, suffix))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for i := range rows {
		if err := w.Write(csvRecord(&rows[i])); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return path, nil
}

func csvRecord(r *model.SampleRow) []string {
	thumbnail := ""
	if r.Thumbnail != nil {
		thumbnail = *r.Thumbnail
	}
	return []string{
		r.Keyword,
		r.Title,
		r.ChannelTitle,
		strconv.FormatInt(r.ChannelSubs, 10),
		strconv.FormatInt(r.Views, 10),
		strconv.FormatInt(r.Likes, 10),
		strconv.FormatInt(r.Comments, 10),
		strconv.FormatInt(r.DurationSeconds, 10),
		thumbnail,
		codec.FormatTimestamp(r.PublishedAt),
		strconv.Itoa(r.Virality),
		strconv.Itoa(r.MonetizationLikelihood),
	}
}
