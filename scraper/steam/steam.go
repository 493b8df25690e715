package steam

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"steam-scraper/config"
	"steam-scraper/models"
	"steam-scraper/services"
	"steam-scraper/utils"
)

// categoryGames restricts search results to games (no DLC, soundtracks etc).
const categoryGames = "998"

// Scraper drives paginated listing discovery across one or more tag passes,
// enriching each surviving row with review totals and revenue estimates.
// The whole pipeline is deliberately synchronous: both remote services are
// third-party and rate-sensitive.
type Scraper struct {
	cfg    *config.Config
	logger *utils.Logger
	client *resty.Client

	rowThrottle  *utils.Throttle
	pageThrottle *utils.Throttle

	games []*models.GameRecord
}

// New creates a ready-to-use Steam catalog Scraper.
func New(cfg *config.Config, logger *utils.Logger) *Scraper {
	return &Scraper{
		cfg:          cfg,
		logger:       logger,
		client:       newHTTPClient(cfg),
		rowThrottle:  utils.NewThrottle(cfg.RowDelay),
		pageThrottle: utils.NewThrottle(cfg.PageDelay),
		games:        make([]*models.GameRecord, 0),
	}
}

// tagPass is one pagination run over a fixed tag filter. Each pass owns its
// dedup set: in "all" mode there is a single pass, so app ids are unique
// for the whole run; in "genres" mode the set resets per genre, so a game
// appears once per genre it matches.
type tagPass struct {
	label string
	tags  []int
	seen  *utils.IDSet
}

// Scrape runs the configured crawl mode and returns the collected rows in
// discovery order across tags, pages and in-page position.
func (s *Scraper) Scrape() ([]*models.GameRecord, error) {
	var passes []tagPass
	switch s.cfg.Mode {
	case "all":
		passes = []tagPass{{
			label: "Indie",
			tags:  []int{config.Indie},
			seen:  utils.NewIDSet(),
		}}
	default:
		for _, gt := range s.cfg.GenreTags {
			passes = append(passes, tagPass{
				label: gt.Name,
				tags:  []int{config.Indie, gt.ID},
				seen:  utils.NewIDSet(),
			})
		}
	}

	s.logger.Info("[steam] Starting scrape — mode: %s | passes: %d | years: %d–%d",
		s.cfg.Mode, len(passes), s.cfg.YearMin, s.cfg.YearMax)

	for _, pass := range passes {
		s.logger.Info("[steam] Collecting %q listings...", pass.label)
		s.runPass(pass)
	}

	s.logger.Info("[steam] Scrape complete — total rows: %d", len(s.games))
	return s.games, nil
}

// runPass paginates one tag filter until a page fails, comes back empty, or
// the optional page cap is reached. A page-level failure only ends this
// pass; later passes still run.
func (s *Scraper) runPass(pass tagPass) {
	for page := 1; s.cfg.MaxPages == 0 || page <= s.cfg.MaxPages; page++ {
		s.pageThrottle.Wait()

		doc, err := s.fetchSearchPage(pass.tags, page)
		if err != nil {
			s.logger.Error("[steam] %s page %d failed: %v — stopping this tag", pass.label, page, err)
			return
		}

		rows := doc.Find(".search_result_row")
		if rows.Length() == 0 {
			s.logger.Info("[steam] %s: reached last page at %d", pass.label, page)
			return
		}
		s.logger.Debug("[steam] %s page %d — %d rows", pass.label, page, rows.Length())

		rows.Each(func(_ int, row *goquery.Selection) {
			s.handleRow(pass, row)
		})
	}

	s.logger.Info("[steam] %s: page cap %d reached", pass.label, s.cfg.MaxPages)
}

// handleRow applies the per-row filters (year range, dedup, free exclusion)
// and enriches survivors with review totals and revenue. A malformed row is
// skipped without touching the rest of the page.
func (s *Scraper) handleRow(pass tagPass, row *goquery.Selection) {
	cand, err := extractListing(row)
	if err != nil {
		s.logger.Debug("[steam] skipping malformed row: %v", err)
		return
	}

	if cand.ReleaseYear < s.cfg.YearMin || cand.ReleaseYear > s.cfg.YearMax {
		return
	}
	if !pass.seen.Add(cand.AppID) {
		s.logger.Debug("[steam] duplicate app %s skipped", cand.AppID)
		return
	}
	if cand.Free() {
		s.logger.Info("[steam] %s - Free (excluded)", cand.Title)
		return
	}

	s.rowThrottle.Wait()
	totals := s.resolveReviews(cand.AppID)

	record := s.buildRecord(pass.label, cand, totals)
	s.games = append(s.games, record)

	s.logger.Info("[steam] %s — reviews(SS) %d / reviews(ALL) %d — revenue(SS) %s, revenue(ALL) %s",
		cand.Title, totals.SteamSpy, totals.AllLanguages,
		record.EstimatedRevenueSteamSpy, record.EstimatedRevenueAllLanguages)
}

// buildRecord projects a candidate plus its review totals into the final
// immutable output row. Revenue columns are "0" whenever the currency could
// not be parsed, regardless of review counts.
func (s *Scraper) buildRecord(genre string, cand *models.ListingCandidate, totals models.ReviewTotals) *models.GameRecord {
	revSS, revAll := "0", "0"
	if cand.Currency != "" {
		price := &services.Price{Value: cand.PriceValue, Symbol: cand.Currency}
		revSS = services.FormatMoney(services.EstimateRevenue(totals.SteamSpy, price), cand.Currency)
		revAll = services.FormatMoney(services.EstimateRevenue(totals.AllLanguages, price), cand.Currency)
	}

	return &models.GameRecord{
		AppID:                        cand.AppID,
		Name:                         cand.Title,
		ReleaseYear:                  cand.ReleaseYear,
		Genre:                        genre,
		Price:                        cand.RawPrice,
		DiscountPercent:              cand.DiscountPercent,
		TotalReviewsSteamSpy:         totals.SteamSpy,
		EstimatedRevenueSteamSpy:     revSS,
		TotalReviewsAllLanguages:     totals.AllLanguages,
		EstimatedRevenueAllLanguages: revAll,

		PriceValue: cand.PriceValue,
		Currency:   cand.Currency,
		ScrapedAt:  time.Now(),
	}
}

// fetchSearchPage requests one page of search results for the tag filter.
func (s *Scraper) fetchSearchPage(tags []int, page int) (*goquery.Document, error) {
	tagStrs := make([]string, len(tags))
	for i, t := range tags {
		tagStrs[i] = strconv.Itoa(t)
	}

	resp, err := s.client.R().
		SetQueryParams(map[string]string{
			"tags":      strings.Join(tagStrs, ","),
			"category1": categoryGames,
			"page":      strconv.Itoa(page),
			"l":         s.cfg.Locale,
			"cc":        s.cfg.CountryCode,
		}).
		Get(s.cfg.StoreBaseURL + "/search/")
	if err != nil {
		return nil, transportErr("search page", err)
	}
	if resp.IsError() {
		return nil, transportErr("search page", fmt.Errorf("status %s", resp.Status()))
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, parseErr("search page", err)
	}
	return doc, nil
}
