package model

import "time"

// ChannelInfo accumulates metadata and sample videos for one channel across
// all keywords of a run. Metadata fields are first-known-value-wins: once a
// field is set it is never overwritten, even if a later fetch would differ.
type ChannelInfo struct {
	Title        string
	Subs         *int64
	RegisteredAt *time.Time
	Country      *string
	Avatar       *string
	Samples      []*VideoRecord
}

// ChannelSummary is the per-channel rollup card built by the aggregator.
type ChannelSummary struct {
	ChannelID              string         `json:"channelId"`
	ChannelTitle           string         `json:"channelTitle"`
	Subs                   int64          `json:"subs"`
	ChannelAgeMonths       *int           `json:"channelAgeMonths,omitempty"`
	Country                *string        `json:"country,omitempty"`
	Avatar                 *string        `json:"avatar,omitempty"`
	SampleCount            int            `json:"sampleCount"`
	AvgDurationSeconds     float64        `json:"avgDurationSeconds"`
	AvgDurationReadable    string         `json:"avgDurationReadable"`
	AvgViewsSample         int64          `json:"avgViewsSample"`
	HighestVirality        int            `json:"highestVirality"`
	MedianVirality         int            `json:"medianVirality"`
	MonetizationLikelihood int            `json:"monetizationLikelihood"`
	SampleVideos           []*VideoRecord `json:"sampleVideos"`
}

// ChannelRef is a channel id/title pair from the persisted sample history,
// used by the dashboard channel picker.
type ChannelRef struct {
	ChannelID    string `json:"channelId"`
	ChannelTitle string `json:"channelTitle"`
}

// TrendPoint is one aggregated point in a channel's trend series: total
// views and mean virality across all samples saved at the same time.
type TrendPoint struct {
	SavedAt     time.Time `json:"savedAt"`
	Views       int64     `json:"views"`
	AvgVirality float64   `json:"avgVirality"`
}
