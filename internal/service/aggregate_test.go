package service

import (
	"testing"
	"time"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
)

var aggNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func sample(virality int, views, duration int64) *model.VideoRecord {
	return &model.VideoRecord{
		Views:           views,
		DurationSeconds: duration,
		Virality:        virality,
	}
}

func accWith(t *testing.T, channels ...string) *ChannelAccumulator {
	t.Helper()
	acc := NewChannelAccumulator()
	for _, cid := range channels {
		acc.Touch(cid, "Channel "+cid)
	}
	return acc
}

func TestBuildChannelSummaries_MedianOddCount(t *testing.T) {
	acc := accWith(t, "c1")
	acc.Append("c1", "", sample(30, 1, 0))
	acc.Append("c1", "", sample(10, 2, 0))
	acc.Append("c1", "", sample(20, 3, 0))

	cards := BuildChannelSummaries(acc, AggregateFilters{}, aggNow)
	if len(cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(cards))
	}
	if cards[0].MedianVirality != 20 {
		t.Errorf("median = %d, want 20", cards[0].MedianVirality)
	}
	if cards[0].HighestVirality != 30 {
		t.Errorf("highest = %d, want 30", cards[0].HighestVirality)
	}
}

func TestBuildChannelSummaries_MedianEvenCountIndexConvention(t *testing.T) {
	// Sorted [10 20 30 40], index n/2 = 2 → 30, not the averaged 25.
	acc := accWith(t, "c1")
	for i, v := range []int{40, 10, 30, 20} {
		acc.Append("c1", "", sample(v, int64(i), 0))
	}

	cards := BuildChannelSummaries(acc, AggregateFilters{}, aggNow)
	if cards[0].MedianVirality != 30 {
		t.Errorf("median = %d, want 30 (index n/2 of sorted viralities)", cards[0].MedianVirality)
	}
}

func TestBuildChannelSummaries_SamplesSortedByViewsDesc(t *testing.T) {
	acc := accWith(t, "c1")
	acc.Append("c1", "", sample(10, 100, 0))
	acc.Append("c1", "", sample(10, 300, 0))
	acc.Append("c1", "", sample(10, 200, 0))

	cards := BuildChannelSummaries(acc, AggregateFilters{}, aggNow)
	got := cards[0].SampleVideos
	if got[0].Views != 300 || got[1].Views != 200 || got[2].Views != 100 {
		t.Errorf("sample views order = [%d %d %d], want [300 200 100]",
			got[0].Views, got[1].Views, got[2].Views)
	}
}

func TestBuildChannelSummaries_SortedByHighestViralityDesc(t *testing.T) {
	acc := accWith(t, "low", "high", "mid")
	acc.Append("low", "", sample(10, 1, 0))
	acc.Append("high", "", sample(90, 1, 0))
	acc.Append("mid", "", sample(50, 1, 0))

	cards := BuildChannelSummaries(acc, AggregateFilters{}, aggNow)
	if cards[0].ChannelID != "high" || cards[1].ChannelID != "mid" || cards[2].ChannelID != "low" {
		t.Errorf("order = [%s %s %s], want [high mid low]",
			cards[0].ChannelID, cards[1].ChannelID, cards[2].ChannelID)
	}
}

func TestBuildChannelSummaries_TiesKeepFirstSeenOrder(t *testing.T) {
	acc := accWith(t, "first", "second", "third")
	for _, cid := range []string{"first", "second", "third"} {
		acc.Append(cid, "", sample(42, 1, 0))
	}

	cards := BuildChannelSummaries(acc, AggregateFilters{}, aggNow)
	if cards[0].ChannelID != "first" || cards[1].ChannelID != "second" || cards[2].ChannelID != "third" {
		t.Errorf("tie order = [%s %s %s], want first-seen order",
			cards[0].ChannelID, cards[1].ChannelID, cards[2].ChannelID)
	}
}

func TestBuildChannelSummaries_EmptyChannelsSkipped(t *testing.T) {
	acc := accWith(t, "empty", "full")
	acc.Append("full", "", sample(10, 1, 0))

	cards := BuildChannelSummaries(acc, AggregateFilters{}, aggNow)
	if len(cards) != 1 || cards[0].ChannelID != "full" {
		t.Fatalf("cards = %d, want only the channel with samples", len(cards))
	}
}

func TestBuildChannelSummaries_CountryFilterExcludesUnknown(t *testing.T) {
	acc := accWith(t, "known", "unknown")
	us := "US"
	acc.ApplyMetadata("known", "", nil, nil, &us, nil)
	acc.Append("known", "", sample(10, 1, 0))
	acc.Append("unknown", "", sample(10, 1, 0))

	cards := BuildChannelSummaries(acc, AggregateFilters{Country: "us"}, aggNow)
	if len(cards) != 1 || cards[0].ChannelID != "known" {
		t.Fatalf("country filter kept %d cards, want only the channel with country data", len(cards))
	}
}

func TestBuildChannelSummaries_CountryFilterSubstringCaseInsensitive(t *testing.T) {
	acc := accWith(t, "c1")
	country := "United Kingdom"
	acc.ApplyMetadata("c1", "", nil, nil, &country, nil)
	acc.Append("c1", "", sample(10, 1, 0))

	if cards := BuildChannelSummaries(acc, AggregateFilters{Country: "kingdom"}, aggNow); len(cards) != 1 {
		t.Errorf("substring match kept %d cards, want 1", len(cards))
	}
	if cards := BuildChannelSummaries(acc, AggregateFilters{Country: "france"}, aggNow); len(cards) != 0 {
		t.Errorf("non-matching country kept %d cards, want 0", len(cards))
	}
}

func TestBuildChannelSummaries_AgeFilterExcludesUnknownRegistration(t *testing.T) {
	acc := accWith(t, "young", "nodate")
	registered := aggNow.AddDate(0, -3, 0)
	var subs int64 = 100
	acc.ApplyMetadata("young", "", &subs, &registered, nil, nil)
	acc.Append("young", "", sample(10, 1, 0))
	acc.Append("nodate", "", sample(10, 1, 0))

	cards := BuildChannelSummaries(acc, AggregateFilters{MaxChannelAgeMonths: 6}, aggNow)
	if len(cards) != 1 || cards[0].ChannelID != "young" {
		t.Fatalf("age filter kept %d cards, want only the channel with a known registration date", len(cards))
	}

	// With the filter off, the unknown-age channel stays in.
	if cards := BuildChannelSummaries(acc, AggregateFilters{}, aggNow); len(cards) != 2 {
		t.Errorf("no age filter kept %d cards, want 2", len(cards))
	}
}

func TestBuildChannelSummaries_MinSubsFilter(t *testing.T) {
	acc := accWith(t, "big", "small")
	big, small := int64(5000), int64(100)
	acc.ApplyMetadata("big", "", &big, nil, nil, nil)
	acc.ApplyMetadata("small", "", &small, nil, nil, nil)
	acc.Append("big", "", sample(10, 1, 0))
	acc.Append("small", "", sample(10, 1, 0))

	cards := BuildChannelSummaries(acc, AggregateFilters{MinSubs: 1000}, aggNow)
	if len(cards) != 1 || cards[0].ChannelID != "big" {
		t.Fatalf("minSubs filter kept %d cards, want only the big channel", len(cards))
	}
}

func TestBuildChannelSummaries_OnlyShortsFilter(t *testing.T) {
	acc := accWith(t, "shorts", "longform")
	acc.Append("shorts", "", sample(10, 1, 45))
	acc.Append("longform", "", sample(10, 1, 600))

	cards := BuildChannelSummaries(acc, AggregateFilters{OnlyShorts: true}, aggNow)
	if len(cards) != 1 || cards[0].ChannelID != "shorts" {
		t.Fatalf("shorts filter kept %d cards, want only the sub-60s channel", len(cards))
	}
}

func TestBuildChannelSummaries_BackfillsMonetizationAndTitle(t *testing.T) {
	acc := accWith(t, "c1")
	v := sample(10, 1, 0)
	acc.Append("c1", "", v)

	cards := BuildChannelSummaries(acc, AggregateFilters{}, aggNow)
	if v.MonetizationLikelihood == nil {
		t.Fatal("sample monetization not back-filled")
	}
	if *v.MonetizationLikelihood != cards[0].MonetizationLikelihood {
		t.Errorf("sample monetization = %d, card = %d, want equal",
			*v.MonetizationLikelihood, cards[0].MonetizationLikelihood)
	}
	if v.ChannelTitle != cards[0].ChannelTitle {
		t.Errorf("sample title = %q, card = %q, want equal", v.ChannelTitle, cards[0].ChannelTitle)
	}
}

func TestBuildChannelSummaries_TitleFallsBackToChannelID(t *testing.T) {
	acc := NewChannelAccumulator()
	acc.Append("UC123", "", sample(10, 1, 0))

	cards := BuildChannelSummaries(acc, AggregateFilters{}, aggNow)
	if cards[0].ChannelTitle != "UC123" {
		t.Errorf("title = %q, want channel id fallback", cards[0].ChannelTitle)
	}
}

func TestFlattenSummaries_OuterCardOrderInnerViewsDesc(t *testing.T) {
	acc := accWith(t, "low", "high")
	acc.Append("low", "", &model.VideoRecord{Keyword: "k", Views: 5, Virality: 10})
	acc.Append("high", "", &model.VideoRecord{Keyword: "k", Views: 100, Virality: 90})
	acc.Append("high", "", &model.VideoRecord{Keyword: "k", Views: 200, Virality: 80})

	cards := BuildChannelSummaries(acc, AggregateFilters{}, aggNow)
	rows := FlattenSummaries(cards)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	// high channel first (virality 90 > 10), its samples views-desc
	if rows[0].Views != 200 || rows[1].Views != 100 || rows[2].Views != 5 {
		t.Errorf("row views = [%d %d %d], want [200 100 5]",
			rows[0].Views, rows[1].Views, rows[2].Views)
	}
}

func TestFlattenSummaries_SubsPreferSampleValue(t *testing.T) {
	acc := accWith(t, "c1")
	var recSubs int64 = 777
	acc.Append("c1", "", &model.VideoRecord{Views: 1, ChannelSubs: &recSubs})
	var cardSubs int64 = 999
	acc.ApplyMetadata("c1", "", &cardSubs, nil, nil, nil)

	cards := BuildChannelSummaries(acc, AggregateFilters{}, aggNow)
	rows := FlattenSummaries(cards)
	if rows[0].ChannelSubs != 777 {
		t.Errorf("row subs = %d, want sample value 777", rows[0].ChannelSubs)
	}
}

func TestMonthsBetween(t *testing.T) {
	from := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := monthsBetween(from, aggNow); got != 36 {
		t.Errorf("monthsBetween = %d, want 36", got)
	}
	if got := monthsBetween(aggNow, from); got != 0 {
		t.Errorf("negative span = %d, want 0 (floored)", got)
	}
}
