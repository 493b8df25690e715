package steam

import (
	"net/http"

	"github.com/go-resty/resty/v2"

	"steam-scraper/config"
)

const userAgent = "Mozilla/5.0"

// newHTTPClient builds the single resty client shared by every request of a
// run: fixed user agent, locale and consent cookies, per-request timeout.
// It is constructed once and never mutated afterwards.
func newHTTPClient(cfg *config.Config) *resty.Client {
	client := resty.New()
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept-Language", "en-US,en;q=0.8")
	client.SetTimeout(cfg.RequestTimeout)
	client.SetCookies([]*http.Cookie{
		{Name: "Steam_Language", Value: cfg.Locale, Domain: ".steampowered.com", Path: "/"},
		{Name: "wants_mature_content", Value: "1", Domain: ".steampowered.com", Path: "/"},
		// fixed birth timestamp so age-gated detail pages are served directly
		{Name: "birthtime", Value: "568022401", Domain: ".steampowered.com", Path: "/"},
	})
	return client
}
