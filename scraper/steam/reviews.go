package steam

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"steam-scraper/models"
)

// steamSpyDetails is the subset of the SteamSpy appdetails payload we read.
type steamSpyDetails struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// appReviewsSummary mirrors the storefront's own review-summary JSON.
type appReviewsSummary struct {
	QuerySummary struct {
		TotalReviews int `json:"total_reviews"`
	} `json:"query_summary"`
}

var intTokenRegexp = regexp.MustCompile(`[\d,]+`)

// resolveReviews runs both review pipelines for one listing. Each total
// defaults to 0 on failure; the two sources are never reconciled.
func (s *Scraper) resolveReviews(appID string) models.ReviewTotals {
	var totals models.ReviewTotals

	spy, err := s.fetchSteamSpyTotal(appID)
	if err != nil {
		s.logger.Warn("[steam] SteamSpy lookup failed for app %s: %v", appID, err)
	} else {
		totals.SteamSpy = spy
	}

	totals.AllLanguages = s.fetchAllLanguagesTotal(appID)
	return totals
}

// fetchSteamSpyTotal asks the aggregator for positive+negative counts.
// One attempt only; any failure is reported back for the caller to default.
func (s *Scraper) fetchSteamSpyTotal(appID string) (int, error) {
	resp, err := s.client.R().
		SetQueryParam("request", "appdetails").
		SetQueryParam("appid", appID).
		Get(s.cfg.SteamSpyBaseURL + "/api.php")
	if err != nil {
		return 0, transportErr("steamspy appdetails", err)
	}
	if resp.IsError() {
		return 0, transportErr("steamspy appdetails", fmt.Errorf("status %s", resp.Status()))
	}

	var details steamSpyDetails
	if err := json.Unmarshal(resp.Body(), &details); err != nil {
		return 0, parseErr("steamspy appdetails", err)
	}

	total := details.Positive + details.Negative
	if total < 0 {
		total = 0
	}
	return total, nil
}

// fetchAllLanguagesTotal resolves the storefront's all-languages review
// count: the review-summary JSON endpoint first, then the detail-page HTML
// heuristics. Exhausting the chain yields 0.
func (s *Scraper) fetchAllLanguagesTotal(appID string) int {
	total, err := s.fetchReviewSummaryJSON(appID)
	if err != nil {
		s.logger.Warn("[steam] appreviews API failed for app %s: %v", appID, err)
	} else if total > 0 {
		return total
	}

	total, err = s.fetchReviewSummaryHTML(appID)
	if err != nil {
		s.logger.Warn("[steam] detail-page review parse failed for app %s: %v", appID, err)
		return 0
	}
	return total
}

// fetchReviewSummaryJSON reads total_reviews across all languages and
// review types. Only a positive integer counts as a usable answer.
func (s *Scraper) fetchReviewSummaryJSON(appID string) (int, error) {
	resp, err := s.client.R().
		SetQueryParams(map[string]string{
			"json":          "1",
			"filter":        "all",
			"language":      "all",
			"review_type":   "all",
			"purchase_type": "all",
		}).
		Get(s.cfg.StoreBaseURL + "/appreviews/" + appID)
	if err != nil {
		return 0, transportErr("appreviews", err)
	}
	if resp.IsError() {
		return 0, transportErr("appreviews", fmt.Errorf("status %s", resp.Status()))
	}

	var summary appReviewsSummary
	if err := json.Unmarshal(resp.Body(), &summary); err != nil {
		return 0, parseErr("appreviews", err)
	}
	if summary.QuerySummary.TotalReviews < 0 {
		return 0, nil
	}
	return summary.QuerySummary.TotalReviews, nil
}

// fetchReviewSummaryHTML scrapes the detail page's review-summary rows.
// The second row is the "all reviews" summary when a "recent reviews" row
// precedes it. Counts come from the structured rating attribute when
// present, else from the largest integer token in the tooltip or visible
// text (tooltips pair a percentage with a count; the count is the larger).
func (s *Scraper) fetchReviewSummaryHTML(appID string) (int, error) {
	resp, err := s.client.R().
		SetQueryParam("l", s.cfg.Locale).
		SetQueryParam("cc", s.cfg.CountryCode).
		Get(s.cfg.StoreBaseURL + "/app/" + appID + "/")
	if err != nil {
		return 0, transportErr("app page", err)
	}
	if resp.IsError() {
		return 0, transportErr("app page", fmt.Errorf("status %s", resp.Status()))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return 0, parseErr("app page", err)
	}

	rows := doc.Find("a.user_reviews_summary_row")
	if rows.Length() == 0 {
		return 0, nil
	}
	target := rows.First()
	if rows.Length() >= 2 {
		target = rows.Eq(1)
	}

	meta := target.Find(`meta[itemprop="ratingCount"], meta[itemprop="reviewCount"]`).First()
	if content, ok := meta.Attr("content"); ok && content != "" {
		if n, err := strconv.Atoi(strings.ReplaceAll(content, ",", "")); err == nil {
			return n, nil
		}
	}

	if tooltip, ok := target.Attr("data-tooltip-html"); ok {
		if n, found := largestInt(tooltip); found {
			return n, nil
		}
	}
	if n, found := largestInt(target.Text()); found {
		return n, nil
	}
	return 0, nil
}

// largestInt returns the maximum comma-grouped integer token in text.
func largestInt(text string) (int, bool) {
	best, found := 0, false
	for _, tok := range intTokenRegexp.FindAllString(text, -1) {
		n, err := strconv.Atoi(strings.ReplaceAll(tok, ",", ""))
		if err != nil {
			continue
		}
		if !found || n > best {
			best = n
			found = true
		}
	}
	return best, found
}
