package service

import (
	"math"
	"time"
)

// ViralityScore rates a video 0-100 from view count and freshness. Age is
// floored at one day, and a missing publish date is treated as freshly
// published, so unparsable dates score high rather than low.
func ViralityScore(views int64, publishedAt *time.Time, now time.Time) int {
	days := 1.0
	if publishedAt != nil {
		days = math.Max(1.0, now.Sub(*publishedAt).Seconds()/86400.0)
	}
	viewsPerDay := float64(views) / days
	return clampScore(math.Log10(1+viewsPerDay) * 30)
}

// MonetizationLikelihood rates a channel 0-100 from subscriber count,
// average views across its sample videos, and channel age in months. Each
// input contributes a tiered amount; missing inputs count as zero.
func MonetizationLikelihood(subs int64, avgViews float64, ageMonths int) int {
	var score float64

	switch {
	case subs >= 10000:
		score += 45
	case subs >= 5000:
		score += 30
	case subs >= 1000:
		score += 18
	case subs >= 500:
		score += 8
	default:
		score += 2
	}

	switch {
	case avgViews >= 50000:
		score += 28
	case avgViews >= 10000:
		score += 20
	case avgViews >= 2000:
		score += 12
	case avgViews >= 500:
		score += 6
	default:
		score += 1
	}

	switch {
	case ageMonths >= 36:
		score += 18
	case ageMonths >= 12:
		score += 10
	case ageMonths >= 6:
		score += 5
	default:
		score += 1
	}

	return clampScore(score)
}

func clampScore(s float64) int {
	return int(math.Max(0, math.Min(100, s)))
}
