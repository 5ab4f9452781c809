package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/youtube"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/pkg/codec"
)

const maxDescriptionRunes = 300

// NormalizeVideo maps one raw video-detail payload into a canonical
// VideoRecord. keywordByVideo is the search-phase mapping from video id to
// originating keyword; videos missing from it get an empty keyword. The
// channel title is resolved accumulator-first, falling back to the title
// embedded in this payload's snippet. Virality is computed here against the
// run's fixed now; monetization likelihood stays unset until aggregation.
func NormalizeVideo(item youtube.VideoItem, keywordByVideo map[string]string, acc *ChannelAccumulator, now time.Time) *model.VideoRecord {
	vid := string(item.ID)
	snip := item.Snippet

	publishedAt := codec.ParseTimestamp(snip.PublishedAt)
	views := parseCount(item.Statistics.ViewCount)
	likes := parseCount(item.Statistics.LikeCount)
	comments := parseCount(item.Statistics.CommentCount)
	duration := codec.DurationSeconds(item.ContentDetails.Duration)

	rec := &model.VideoRecord{
		Keyword:          keywordByVideo[vid],
		Title:            snip.Title,
		Description:      truncateRunes(snip.Description, maxDescriptionRunes),
		Tags:             snip.Tags,
		URL:              fmt.Sprintf("https://www.youtube.com/watch?v=%s", vid),
		ChannelTitle:     snip.ChannelTitle,
		Views:            views,
		Likes:            likes,
		Comments:         comments,
		DurationSeconds:  duration,
		DurationReadable: codec.ReadableDuration(duration),
		Thumbnail:        snip.Thumbnails.BestURL(),
		PublishedAt:      publishedAt,
		Virality:         ViralityScore(views, publishedAt, now),
	}

	if snip.ChannelID != "" {
		cid := snip.ChannelID
		rec.ChannelID = &cid
		if info := acc.Get(cid); info != nil {
			if info.Title != "" {
				rec.ChannelTitle = info.Title
			}
			rec.ChannelSubs = info.Subs
		}
	}

	return rec
}

// parseCount reads a decimal count field, defaulting to 0 on missing or
// malformed input.
func parseCount(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
