package model

import "time"

// VideoRecord is one normalized video sample produced during a scan.
// Records are immutable once normalized, except for the channel-level
// back-fill of ChannelTitle and MonetizationLikelihood during aggregation.
type VideoRecord struct {
	Keyword                string     `json:"keyword"`
	Title                  string     `json:"title"`
	Description            string     `json:"description,omitempty"`
	Tags                   []string   `json:"tags,omitempty"`
	URL                    string     `json:"url"`
	ChannelID              *string    `json:"channelId,omitempty"`
	ChannelTitle           string     `json:"channelTitle,omitempty"`
	ChannelSubs            *int64     `json:"channelSubs,omitempty"`
	Views                  int64      `json:"views"`
	Likes                  int64      `json:"likes"`
	Comments               int64      `json:"comments"`
	DurationSeconds        int64      `json:"durationSeconds"`
	DurationReadable       string     `json:"durationReadable"`
	Thumbnail              *string    `json:"thumbnail,omitempty"`
	PublishedAt            *time.Time `json:"publishedAt,omitempty"`
	Virality               int        `json:"virality"`
	MonetizationLikelihood *int       `json:"monetizationLikelihood,omitempty"`
}
