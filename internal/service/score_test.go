package service

import (
	"testing"
	"time"
)

func TestViralityScore_ZeroViews(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	published := now.AddDate(0, 0, -7)
	if got := ViralityScore(0, &published, now); got != 0 {
		t.Errorf("score = %d, want 0 (no views)", got)
	}
}

func TestViralityScore_Bounds(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	published := now.AddDate(0, 0, -1)
	// 10^9 views in one day: log10(1e9+1)*30 ≈ 270, clamped to 100
	if got := ViralityScore(1_000_000_000, &published, now); got != 100 {
		t.Errorf("score = %d, want 100 (clamped)", got)
	}
}

func TestViralityScore_KnownValue(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	published := now.AddDate(0, 0, -10)
	// 10000 views over 10 days = 1000/day; log10(1001)*30 = 90.01 → 90
	if got := ViralityScore(10_000, &published, now); got != 90 {
		t.Errorf("score = %d, want 90", got)
	}
}

func TestViralityScore_MissingDateTreatedAsOneDay(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	published := now.AddDate(0, 0, -1)
	withDate := ViralityScore(500, &published, now)
	withoutDate := ViralityScore(500, nil, now)
	if withDate != withoutDate {
		t.Errorf("missing date score = %d, one-day score = %d, want equal", withoutDate, withDate)
	}
}

func TestViralityScore_AgeFlooredAtOneDay(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	published := now.Add(-time.Hour)
	oneDayAgo := now.Add(-24 * time.Hour)
	recent := ViralityScore(500, &published, now)
	day := ViralityScore(500, &oneDayAgo, now)
	if recent != day {
		t.Errorf("1h-old score = %d, 1d-old score = %d, want equal (floor)", recent, day)
	}
}

func TestViralityScore_FresherScoresHigher(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	fresh := now.AddDate(0, 0, -2)
	stale := now.AddDate(0, 0, -60)
	if f, s := ViralityScore(100_000, &fresh, now), ViralityScore(100_000, &stale, now); f <= s {
		t.Errorf("fresh score = %d, stale score = %d, want fresh > stale", f, s)
	}
}

func TestMonetizationLikelihood_AllZero(t *testing.T) {
	// Minimum tiers: 2 (subs) + 1 (views) + 1 (age) = 4
	if got := MonetizationLikelihood(0, 0, 0); got != 4 {
		t.Errorf("score = %d, want 4", got)
	}
}

func TestMonetizationLikelihood_AllMax(t *testing.T) {
	// Maximum tiers: 45 + 28 + 18 = 91
	if got := MonetizationLikelihood(20_000, 100_000, 48); got != 91 {
		t.Errorf("score = %d, want 91", got)
	}
}

func TestMonetizationLikelihood_MidTiers(t *testing.T) {
	// 5000 subs = 30, 20000 avg views = 20, 36 months = 18 → 68
	if got := MonetizationLikelihood(5_000, 20_000, 36); got != 68 {
		t.Errorf("score = %d, want 68", got)
	}
}

func TestMonetizationLikelihood_TierBoundaries(t *testing.T) {
	cases := []struct {
		subs     int64
		avgViews float64
		age      int
		want     int
	}{
		{10_000, 0, 0, 45 + 1 + 1},
		{9_999, 0, 0, 30 + 1 + 1},
		{1_000, 0, 0, 18 + 1 + 1},
		{500, 0, 0, 8 + 1 + 1},
		{499, 0, 0, 2 + 1 + 1},
		{0, 50_000, 0, 2 + 28 + 1},
		{0, 2_000, 0, 2 + 12 + 1},
		{0, 500, 0, 2 + 6 + 1},
		{0, 0, 36, 2 + 1 + 18},
		{0, 0, 12, 2 + 1 + 10},
		{0, 0, 6, 2 + 1 + 5},
		{0, 0, 5, 2 + 1 + 1},
	}
	for _, c := range cases {
		if got := MonetizationLikelihood(c.subs, c.avgViews, c.age); got != c.want {
			t.Errorf("MonetizationLikelihood(%d, %.0f, %d) = %d, want %d",
				c.subs, c.avgViews, c.age, got, c.want)
		}
	}
}
