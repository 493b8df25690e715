package steam

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"steam-scraper/models"
	"steam-scraper/services"
)

var appIDRegexp = regexp.MustCompile(`/app/(\d+)`)

// extractListing parses one search-result row into a candidate record. The
// app id is read from the structured data attribute when present, falling
// back to the row's link path. A row with no resolvable id is rejected; the
// caller skips it and moves on.
func extractListing(row *goquery.Selection) (*models.ListingCandidate, error) {
	appID, _ := row.Attr("data-ds-appid")
	if appID == "" {
		href, _ := row.Attr("href")
		m := appIDRegexp.FindStringSubmatch(href)
		if m == nil {
			return nil, parseErr("extract listing", fmt.Errorf("no app id on row (href %q)", href))
		}
		appID = m[1]
	}

	title := strings.TrimSpace(row.Find(".title").First().Text())
	releaseText := strings.TrimSpace(row.Find(".search_released").First().Text())
	year, _ := services.ParseReleaseYear(releaseText)

	rawPrice := rowPriceText(row)

	cand := &models.ListingCandidate{
		AppID:       appID,
		Title:       title,
		ReleaseYear: year,
		RawPrice:    rawPrice,
		DiscountPercent: services.DiscountPercent(
			row.Find(".discount_original_price").First().Text(),
			row.Find(".discount_final_price").First().Text(),
		),
	}

	if p := services.ParsePrice(rawPrice); p != nil {
		cand.PriceValue = p.Value
		cand.PriceKnown = true
		cand.Currency = p.Symbol
	}

	return cand, nil
}

// rowPriceText prefers the discounted price over the plain search price,
// mirroring what the storefront displays for rows on sale.
func rowPriceText(row *goquery.Selection) string {
	sel := row.Find(".discount_final_price").First()
	if sel.Length() == 0 {
		sel = row.Find(".search_price").First()
	}
	return cleanPrice(sel.Text())
}

// cleanPrice strips embedded newlines from the storefront's price markup.
// An absent price becomes "Unknown"; the row is still kept, it just never
// contributes to revenue math.
func cleanPrice(text string) string {
	text = strings.NewReplacer("\n", "", "\r", "").Replace(text)
	text = strings.TrimSpace(text)
	if text == "" {
		return "Unknown"
	}
	return text
}
