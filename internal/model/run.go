package model

import "time"

// Run is one persisted scan execution.
type Run struct {
	RunID     string    `json:"runId"`
	StartedAt time.Time `json:"startedAt"`
	Days      int       `json:"days"`
	Keywords  []string  `json:"keywords"`
	Notes     string    `json:"notes,omitempty"`
}

// SampleRow is one flattened output row as persisted and exported. The
// channel id is stored in the database but deliberately excluded from CSV
// exports; the raw video id is never persisted at all.
type SampleRow struct {
	RunID                  string     `json:"runId,omitempty"`
	Keyword                string     `json:"keyword"`
	Title                  string     `json:"title"`
	ChannelID              *string    `json:"channelId,omitempty"`
	ChannelTitle           string     `json:"channelTitle"`
	ChannelSubs            int64      `json:"channelSubs"`
	Views                  int64      `json:"views"`
	Likes                  int64      `json:"likes"`
	Comments               int64      `json:"comments"`
	DurationSeconds        int64      `json:"durationSeconds"`
	Thumbnail              *string    `json:"thumbnail,omitempty"`
	PublishedAt            *time.Time `json:"publishedAt,omitempty"`
	Virality               int        `json:"virality"`
	MonetizationLikelihood int        `json:"monetizationLikelihood"`
	SavedAt                time.Time  `json:"savedAt,omitempty"`
}
