package models

import "time"

// RateSnapshot represents one observation of a published reference rate
type RateSnapshot struct {
	Series    string    `json:"series"`
	Date      time.Time `json:"date"`
	Value     float64   `json:"value"` // percent
	FetchedAt time.Time `json:"fetched_at"`
}
