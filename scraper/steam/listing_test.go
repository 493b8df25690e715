package steam

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRow(t *testing.T, html string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	row := doc.Find(".search_result_row")
	require.Equal(t, 1, row.Length(), "fixture should contain exactly one row")
	return row
}

func TestExtractListingDiscountedRow(t *testing.T) {
	row := parseRow(t, `
		<a href="https://store.steampowered.com/app/367520/Hollow_Knight/"
		   data-ds-appid="367520" class="search_result_row">
			<span class="title">Hollow Knight</span>
			<div class="search_released">24 Jun, 2017</div>
			<div class="search_price_discount_combined">
				<div class="discount_original_price">₩20,000</div>
				<div class="discount_final_price">₩15,000</div>
			</div>
		</a>`)

	cand, err := extractListing(row)
	require.NoError(t, err)

	assert.Equal(t, "367520", cand.AppID)
	assert.Equal(t, "Hollow Knight", cand.Title)
	assert.Equal(t, 2017, cand.ReleaseYear)
	assert.Equal(t, "₩15,000", cand.RawPrice)
	assert.True(t, cand.PriceKnown)
	assert.Equal(t, float64(15000), cand.PriceValue)
	assert.Equal(t, "₩", cand.Currency)
	assert.Equal(t, "25%", cand.DiscountPercent)
	assert.False(t, cand.Free())
}

func TestExtractListingAppIDFromHref(t *testing.T) {
	row := parseRow(t, `
		<a href="https://store.steampowered.com/app/413150/Stardew_Valley/"
		   class="search_result_row">
			<span class="title">Stardew Valley</span>
			<div class="search_released">Feb 26, 2016</div>
			<div class="search_price">$14.99</div>
		</a>`)

	cand, err := extractListing(row)
	require.NoError(t, err)

	assert.Equal(t, "413150", cand.AppID)
	assert.Equal(t, float64(14.99), cand.PriceValue)
	assert.Equal(t, "$", cand.Currency)
	assert.Equal(t, "0%", cand.DiscountPercent)
}

func TestExtractListingNoAppID(t *testing.T) {
	row := parseRow(t, `
		<a href="https://store.steampowered.com/bundle/12345/" class="search_result_row">
			<span class="title">Some Bundle</span>
		</a>`)

	_, err := extractListing(row)
	require.Error(t, err)

	var scrapeErr *ScrapeError
	require.ErrorAs(t, err, &scrapeErr)
	assert.Equal(t, KindParse, scrapeErr.Kind)
}

func TestExtractListingFreeGame(t *testing.T) {
	row := parseRow(t, `
		<a href="https://store.steampowered.com/app/570/Dota_2/"
		   data-ds-appid="570" class="search_result_row">
			<span class="title">Dota 2</span>
			<div class="search_released">9 Jul, 2013</div>
			<div class="search_price">Free To Play</div>
		</a>`)

	cand, err := extractListing(row)
	require.NoError(t, err)

	assert.True(t, cand.Free())
	assert.Equal(t, float64(0), cand.PriceValue)
	assert.Empty(t, cand.Currency)
}

func TestExtractListingUnparseablePrice(t *testing.T) {
	row := parseRow(t, `
		<a href="https://store.steampowered.com/app/999/Odd_Game/"
		   data-ds-appid="999" class="search_result_row">
			<span class="title">Odd Game</span>
			<div class="search_released">Coming soon</div>
		</a>`)

	cand, err := extractListing(row)
	require.NoError(t, err)

	// unresolved release and absent price keep the row parseable; the
	// crawler's filters decide its fate
	assert.Equal(t, 0, cand.ReleaseYear)
	assert.Equal(t, "Unknown", cand.RawPrice)
	assert.False(t, cand.PriceKnown)
	assert.False(t, cand.Free())
}

func TestCleanPrice(t *testing.T) {
	assert.Equal(t, "₩15,000", cleanPrice("\n\t₩15,000\r\n"))
	assert.Equal(t, "Unknown", cleanPrice("  \n "))
}
