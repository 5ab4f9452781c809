package middleware

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Marketolytics/YT-Viral-Topics-Tools/internal/model"
)

// Bounds for the scan configuration surface.
const (
	MinDays        = 1
	MaxDays        = 90
	DefaultDays    = 7
	MinResults     = 1
	MaxResults     = 50
	DefaultResults = 8
	MaxNoteLen     = 500
)

// keywordSplitRe splits keyword text on newlines and commas.
var keywordSplitRe = regexp.MustCompile(`[\n,]+`)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// SplitKeywords parses newline/comma separated keyword text into trimmed,
// non-empty keywords.
func SplitKeywords(text string) []string {
	var keywords []string
	for _, k := range keywordSplitRe.Split(text, -1) {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// ValidateScanRequest normalizes a scan request in place and returns an
// error message, or "" when the request is valid. Zero-valued day and
// result counts take defaults; out-of-range explicit values are rejected.
func ValidateScanRequest(req *model.ScanRequest) string {
	if len(req.Keywords) == 0 && req.KeywordsText != "" {
		req.Keywords = SplitKeywords(req.KeywordsText)
	}
	for i, k := range req.Keywords {
		req.Keywords[i] = strings.TrimSpace(k)
	}
	req.Keywords = dropEmpty(req.Keywords)
	if len(req.Keywords) == 0 {
		return "at least one keyword is required"
	}

	if req.Days == 0 {
		req.Days = DefaultDays
	}
	if req.Days < MinDays || req.Days > MaxDays {
		return fmt.Sprintf("days must be between %d and %d", MinDays, MaxDays)
	}

	if req.ResultsPerKeyword == 0 {
		req.ResultsPerKeyword = DefaultResults
	}
	if req.ResultsPerKeyword < MinResults || req.ResultsPerKeyword > MaxResults {
		return fmt.Sprintf("resultsPerKeyword must be between %d and %d", MinResults, MaxResults)
	}

	if req.MinSubs < 0 {
		return "minSubs must not be negative"
	}
	if req.MaxChannelAgeMonths < 0 {
		return "maxChannelAgeMonths must not be negative"
	}

	req.CountryFilter = strings.TrimSpace(req.CountryFilter)
	req.Notes = strings.TrimSpace(req.Notes)
	if len(req.Notes) > MaxNoteLen {
		return fmt.Sprintf("notes must be at most %d characters", MaxNoteLen)
	}

	return ""
}

// ValidateChannelID checks that a channel id is well-formed.
func ValidateChannelID(id string) (string, string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "channelId is required"
	}
	if len(id) > 64 {
		return "", "channelId must be at most 64 characters"
	}
	if !channelIDRe.MatchString(id) {
		return "", "channelId contains invalid characters"
	}
	return id, ""
}

var channelIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func dropEmpty(ss []string) []string {
	out := ss[:0]
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
