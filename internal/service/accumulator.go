package service

import (
	"time"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
)

// ChannelAccumulator collects channel metadata and sample videos across all
// keywords of one run. It is exclusively owned by the run that created it;
// no locking is needed. Metadata fields are set once and never overwritten
// (first-known-value-wins), and channel insertion order is retained so the
// aggregation output is stable across runs with identical input.
type ChannelAccumulator struct {
	channels map[string]*model.ChannelInfo
	order    []string
}

func NewChannelAccumulator() *ChannelAccumulator {
	return &ChannelAccumulator{channels: make(map[string]*model.ChannelInfo)}
}

// Touch ensures an entry exists for the channel and records the title if
// none is known yet.
func (a *ChannelAccumulator) Touch(channelID, title string) *model.ChannelInfo {
	info, ok := a.channels[channelID]
	if !ok {
		info = &model.ChannelInfo{}
		a.channels[channelID] = info
		a.order = append(a.order, channelID)
	}
	if info.Title == "" && title != "" {
		info.Title = title
	}
	return info
}

// ApplyMetadata fills in channel metadata fields that are still unknown.
// Fields already set by an earlier fetch keep their first value.
func (a *ChannelAccumulator) ApplyMetadata(channelID, title string, subs *int64, registeredAt *time.Time, country, avatar *string) {
	info := a.Touch(channelID, title)
	if info.Subs == nil {
		info.Subs = subs
	}
	if info.RegisteredAt == nil {
		info.RegisteredAt = registeredAt
	}
	if info.Country == nil {
		info.Country = country
	}
	if info.Avatar == nil {
		info.Avatar = avatar
	}
}

// Append attributes a sample video to the channel.
func (a *ChannelAccumulator) Append(channelID, title string, v *model.VideoRecord) {
	info := a.Touch(channelID, title)
	info.Samples = append(info.Samples, v)
}

// Get returns the accumulated info for a channel, or nil.
func (a *ChannelAccumulator) Get(channelID string) *model.ChannelInfo {
	return a.channels[channelID]
}

// IDs returns all channel ids in first-seen order.
func (a *ChannelAccumulator) IDs() []string {
	return a.order
}

// NeedsMetadata filters ids down to channels whose subscriber count is
// still unknown, deduplicated. These are the channels worth a metadata
// fetch; everything else already had its first-wins fields settled.
func (a *ChannelAccumulator) NeedsMetadata(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var need []string
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		info, ok := a.channels[id]
		if !ok || info.Subs == nil {
			need = append(need, id)
		}
	}
	return need
}
