package service

import (
	"sort"
	"strings"
	"time"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
	"github.com/Marketolytics/YT-Viral-Topics-Tools/pkg/codec"
)

// AggregateFilters is the run-level filter configuration applied during
// channel aggregation. Zero values disable the numeric filters.
type AggregateFilters struct {
	MinSubs             int64
	MaxChannelAgeMonths int
	OnlyShorts          bool
	Country             string
}

// BuildChannelSummaries rolls the accumulated channels up into summary
// cards ordered by highest virality descending (stable, preserving
// first-seen channel order for ties).
//
// The per-channel step order matters: the country and age filters run
// before metric computation so that channels with unknown data are excluded
// whenever the corresponding filter is active, and the subscriber and
// shorts filters run after the summary is built, matching the scoring
// semantics the dashboard history was collected under.
func BuildChannelSummaries(acc *ChannelAccumulator, f AggregateFilters, now time.Time) []model.ChannelSummary {
	country := strings.ToLower(strings.TrimSpace(f.Country))

	var cards []model.ChannelSummary
	for _, cid := range acc.IDs() {
		info := acc.Get(cid)
		sv := info.Samples
		if len(sv) == 0 {
			continue
		}

		if country != "" {
			if info.Country == nil || !strings.Contains(strings.ToLower(*info.Country), country) {
				continue
			}
		}

		var ageMonths *int
		if info.RegisteredAt != nil {
			m := monthsBetween(*info.RegisteredAt, now)
			ageMonths = &m
		}
		if f.MaxChannelAgeMonths > 0 {
			if ageMonths == nil || *ageMonths > f.MaxChannelAgeMonths {
				continue
			}
		}

		n := len(sv)
		var totalDuration, totalViews int64
		viralities := make([]int, 0, n)
		for _, v := range sv {
			totalDuration += v.DurationSeconds
			totalViews += v.Views
			viralities = append(viralities, v.Virality)
		}
		avgDuration := float64(totalDuration) / float64(n)
		avgViews := float64(totalViews) / float64(n)

		sort.Ints(viralities)
		highest := viralities[n-1]
		// Lower-middle element, not a true median for even n. Downstream
		// consumers depend on the existing values; do not "fix".
		median := viralities[n/2]

		var subs int64
		if info.Subs != nil {
			subs = *info.Subs
		}
		var age int
		if ageMonths != nil {
			age = *ageMonths
		}
		monetization := MonetizationLikelihood(subs, avgViews, age)

		title := info.Title
		if title == "" && sv[0].ChannelTitle != "" {
			title = sv[0].ChannelTitle
		}
		if title == "" {
			title = cid
		}

		for _, v := range sv {
			m := monetization
			v.MonetizationLikelihood = &m
			v.ChannelTitle = title
		}

		ordered := make([]*model.VideoRecord, n)
		copy(ordered, sv)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].Views > ordered[j].Views
		})

		card := model.ChannelSummary{
			ChannelID:              cid,
			ChannelTitle:           title,
			Subs:                   subs,
			ChannelAgeMonths:       ageMonths,
			Country:                info.Country,
			Avatar:                 info.Avatar,
			SampleCount:            n,
			AvgDurationSeconds:     avgDuration,
			AvgDurationReadable:    codec.ReadableDuration(int64(avgDuration)),
			AvgViewsSample:         int64(avgViews),
			HighestVirality:        highest,
			MedianVirality:         median,
			MonetizationLikelihood: monetization,
			SampleVideos:           ordered,
		}

		if f.MinSubs > 0 && card.Subs < f.MinSubs {
			continue
		}
		if f.OnlyShorts && card.AvgDurationSeconds >= 60 {
			continue
		}

		cards = append(cards, card)
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].HighestVirality > cards[j].HighestVirality
	})
	return cards
}

// FlattenSummaries turns ordered summary cards into the flat row set that
// is persisted and exported: outer loop over summaries in sorted order,
// inner loop over each summary's samples in views-descending order.
func FlattenSummaries(cards []model.ChannelSummary) []model.SampleRow {
	var rows []model.SampleRow
	for i := range cards {
		c := &cards[i]
		for _, v := range c.SampleVideos {
			subs := c.Subs
			if v.ChannelSubs != nil && *v.ChannelSubs != 0 {
				subs = *v.ChannelSubs
			}
			monetization := c.MonetizationLikelihood
			if v.MonetizationLikelihood != nil {
				monetization = *v.MonetizationLikelihood
			}
			rows = append(rows, model.SampleRow{
				Keyword:                v.Keyword,
				Title:                  v.Title,
				ChannelID:              v.ChannelID,
				ChannelTitle:           v.ChannelTitle,
				ChannelSubs:            subs,
				Views:                  v.Views,
				Likes:                  v.Likes,
				Comments:               v.Comments,
				DurationSeconds:        v.DurationSeconds,
				Thumbnail:              v.Thumbnail,
				PublishedAt:            v.PublishedAt,
				Virality:               v.Virality,
				MonetizationLikelihood: monetization,
			})
		}
	}
	return rows
}

// monthsBetween returns the whole-month difference between two dates,
// floored at zero.
func monthsBetween(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if months < 0 {
		return 0
	}
	return months
}
