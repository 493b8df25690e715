package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// releaseDateFormats are tried in priority order; the storefront serves the
// localized long form alongside two short English forms depending on region.
var releaseDateFormats = []string{
	"2006년 1월 2일",
	"2 Jan, 2006",
	"Jan 2, 2006",
}

// bareYearRegexp catches release texts that carry a plain year ("2021",
// "Q4 2021") without a full date.
var bareYearRegexp = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// ParseReleaseYear resolves a free-text release date to its year. Texts
// like "Coming soon" or "출시예정" resolve to (0, false); absence of a date
// is an expected outcome, not an error.
func ParseReleaseYear(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	for _, layout := range releaseDateFormats {
		if t, err := time.Parse(layout, text); err == nil {
			return t.Year(), true
		}
	}

	if m := bareYearRegexp.FindString(text); m != "" {
		year, err := strconv.Atoi(m)
		if err == nil {
			return year, true
		}
	}

	return 0, false
}
