package models

import "time"

// ListingCandidate holds one row scraped from a search-results page before
// review enrichment. ReleaseYear is 0 when the release text could not be
// resolved to a year.
type ListingCandidate struct {
	AppID           string
	Title           string
	ReleaseYear     int
	RawPrice        string
	PriceValue      float64
	PriceKnown      bool
	Currency        string
	DiscountPercent string
}

// Free reports whether the listing resolved to a free title. Free rows are
// excluded from the dataset; unparseable prices are not.
func (c *ListingCandidate) Free() bool {
	return c.PriceKnown && c.PriceValue == 0
}

// ReviewTotals carries the two independently sourced review counts for one
// listing. Both default to 0 on any resolution failure and are never
// reconciled against each other.
type ReviewTotals struct {
	SteamSpy     int
	AllLanguages int
}

// GameRecord is the final, immutable output row. The first ten fields map
// 1:1 onto the CSV columns; the remaining fields are carried for the
// Postgres sink and the insight report only.
type GameRecord struct {
	AppID                        string
	Name                         string
	ReleaseYear                  int
	Genre                        string
	Price                        string
	DiscountPercent              string
	TotalReviewsSteamSpy         int
	EstimatedRevenueSteamSpy     string
	TotalReviewsAllLanguages     int
	EstimatedRevenueAllLanguages string

	PriceValue float64
	Currency   string
	ScrapedAt  time.Time
}

// InsightReport holds the computed analytics over the final dataset.
type InsightReport struct {
	TotalGames    int
	GamesByGenre  map[string]int
	GamesByYear   map[int]int
	AveragePrice  float64
	MinPrice      float64
	MaxPrice      float64
	TopReviewed   []*GameRecord
	RevenueLeader *GameRecord
}
