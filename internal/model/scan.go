package model

import "time"

// ScanRequest is the run-level configuration for one scan. Keywords may be
// given as a list or as raw newline/comma separated text; validation
// normalizes the latter into the former.
type ScanRequest struct {
	Keywords            []string `json:"keywords,omitempty"`
	KeywordsText        string   `json:"keywordsText,omitempty"`
	Days                int      `json:"days"`
	ResultsPerKeyword   int      `json:"resultsPerKeyword"`
	MinSubs             int64    `json:"minSubs"`
	MaxChannelAgeMonths int      `json:"maxChannelAgeMonths"`
	OnlyShorts          bool     `json:"onlyShorts"`
	CountryFilter       string   `json:"countryFilter,omitempty"`
	AutoExportCSV       bool     `json:"autoExportCsv"`
	SaveToDB            bool     `json:"saveToDb"`
	IncludeRows         bool     `json:"includeRows"`
	Notes               string   `json:"notes,omitempty"`
}

// ScanResult is the outcome of one complete scan pass.
type ScanResult struct {
	RunID     string           `json:"runId"`
	StartedAt time.Time        `json:"startedAt"`
	Channels  []ChannelSummary `json:"channels"`
	Rows      []SampleRow      `json:"rows,omitempty"`
	CSVFile   string           `json:"csvFile,omitempty"`
	Saved     bool             `json:"saved"`
	Errors    []string         `json:"errors,omitempty"`
}
