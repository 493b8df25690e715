package services

import (
	"fmt"
	"sort"
	"strings"

	"steam-scraper/models"
	"steam-scraper/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(games []*models.GameRecord) *models.InsightReport {
	report := &models.InsightReport{
		GamesByGenre: make(map[string]int),
		GamesByYear:  make(map[int]int),
	}

	if len(games) == 0 {
		return report
	}

	report.TotalGames = len(games)

	var priced []*models.GameRecord
	var reviewed []*models.GameRecord
	var bestRevenue float64

	for _, g := range games {
		report.GamesByGenre[g.Genre]++
		report.GamesByYear[g.ReleaseYear]++

		if g.PriceValue > 0 {
			priced = append(priced, g)
		}
		if g.TotalReviewsAllLanguages > 0 {
			reviewed = append(reviewed, g)
		}

		if g.Currency != "" {
			revenue := float64(g.TotalReviewsAllLanguages) * ReviewsToSalesRatio * g.PriceValue
			if revenue > bestRevenue {
				bestRevenue = revenue
				report.RevenueLeader = g
			}
		}
	}

	// Price stats (only games with a parsed, non-free price)
	if len(priced) > 0 {
		report.MinPrice = priced[0].PriceValue
		report.MaxPrice = priced[0].PriceValue
		var total float64
		for _, g := range priced {
			total += g.PriceValue
			if g.PriceValue < report.MinPrice {
				report.MinPrice = g.PriceValue
			}
			if g.PriceValue > report.MaxPrice {
				report.MaxPrice = g.PriceValue
			}
		}
		report.AveragePrice = round2(total / float64(len(priced)))
		report.MinPrice = round2(report.MinPrice)
		report.MaxPrice = round2(report.MaxPrice)
	}

	// Top 5 by all-languages review count
	sort.Slice(reviewed, func(i, j int) bool {
		return reviewed[i].TotalReviewsAllLanguages > reviewed[j].TotalReviewsAllLanguages
	})
	if len(reviewed) > 5 {
		report.TopReviewed = reviewed[:5]
	} else {
		report.TopReviewed = reviewed
	}

	return report
}

func (s *InsightService) Print(r *models.InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 STEAM INDIE CATALOG INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Games collected : \033[1m%d\033[0m\n", r.TotalGames)
	fmt.Println()

	// Price Stats
	fmt.Printf("\033[1;33m  Price Statistics (parsed prices only)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.AveragePrice > 0 {
		fmt.Printf("  Average price : \033[1;32m%.2f\033[0m\n", r.AveragePrice)
		fmt.Printf("  Minimum price : \033[1;32m%.2f\033[0m\n", r.MinPrice)
		fmt.Printf("  Maximum price : \033[1;32m%.2f\033[0m\n", r.MaxPrice)
	} else {
		fmt.Printf("  No price data available\n")
	}
	fmt.Println()

	// Revenue leader
	if r.RevenueLeader != nil {
		fmt.Printf("\033[1;33m  Estimated Revenue Leader\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s\n", truncate(r.RevenueLeader.Name, 50))
		fmt.Printf("  Genre   : %s\n", r.RevenueLeader.Genre)
		fmt.Printf("  Revenue : \033[1;31m%s\033[0m\n", r.RevenueLeader.EstimatedRevenueAllLanguages)
		fmt.Println()
	}

	// Top 5 by review count
	fmt.Printf("\033[1;33m  Top 5 Most Reviewed Games\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.TopReviewed) == 0 {
		fmt.Printf("  No reviewed games found\n")
	} else {
		for i, g := range r.TopReviewed {
			name := truncate(g.Name, 38)
			fmt.Printf("  \033[1m%d.\033[0m %-40s \033[1;32m%d reviews\033[0m\n",
				i+1, name, g.TotalReviewsAllLanguages)
		}
	}
	fmt.Println()

	// Games by genre
	fmt.Printf("\033[1;33m  Games by Genre\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.GamesByGenre) == 0 {
		fmt.Printf("  No genre data\n")
	} else {
		type genreCount struct {
			genre string
			count int
		}
		var genres []genreCount
		for genre, cnt := range r.GamesByGenre {
			if genre != "" {
				genres = append(genres, genreCount{genre, cnt})
			}
		}
		sort.Slice(genres, func(i, j int) bool {
			return genres[i].count > genres[j].count
		})
		for _, gc := range genres {
			bar := strings.Repeat("█", scaleBar(gc.count))
			fmt.Printf("  %-30s %s (%d)\n", truncate(gc.genre, 28), bar, gc.count)
		}
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

// scaleBar keeps the histogram readable for large genre counts.
func scaleBar(count int) int {
	if count > 40 {
		return 40
	}
	return count
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
