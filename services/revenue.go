package services

import (
	"math"
	"strconv"
	"strings"
)

// ReviewsToSalesRatio is the heuristic multiplier from review count to
// units sold used across the estimated-revenue columns.
const ReviewsToSalesRatio = 50

// EstimateRevenue converts a review total and unit price into an estimated
// lifetime revenue figure. Free/unknown prices and non-positive review
// totals always estimate to 0.
func EstimateRevenue(totalReviews int, price *Price) float64 {
	if price == nil || price.Value <= 0 || totalReviews <= 0 {
		return 0
	}
	return float64(totalReviews) * ReviewsToSalesRatio * price.Value
}

// FormatMoney renders an amount for the given currency symbol: won as a
// grouped integer, the decimal currencies with two decimals, anything
// unrecognised as a bare numeral.
func FormatMoney(amount float64, symbol string) string {
	switch symbol {
	case "₩":
		return "₩" + groupInt(int64(math.Round(amount)))
	case "$", "€", "£":
		cents := int64(math.Round(amount * 100))
		sign := ""
		if cents < 0 {
			sign = "-"
			cents = -cents
		}
		return symbol + sign + groupInt(cents/100) + "." + pad2(cents%100)
	default:
		return strconv.FormatFloat(amount, 'f', -1, 64)
	}
}

// groupInt renders n with comma thousands separators.
func groupInt(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
