package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// priceRegexp captures a supported currency symbol followed by a numeral
	priceRegexp = regexp.MustCompile(`([$£€₩])\s*([0-9][0-9,]*(?:\.[0-9]+)?)`)
	// numeralRegexp captures the leading numeral of a price text, currency-agnostic
	numeralRegexp = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)
)

// Price is a parsed price. A zero Value with an empty Symbol means the
// title is free; unparseable texts yield a nil *Price instead.
type Price struct {
	Value  float64
	Symbol string
}

// ParsePrice extracts a currency symbol and amount from free text.
// "Free", "Free To Play" and the Korean free marker resolve to a zero
// price; texts with no recognisable price resolve to nil.
func ParsePrice(text string) *Price {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	low := strings.ToLower(text)
	if strings.Contains(low, "free") || strings.Contains(low, "무료") {
		return &Price{}
	}

	m := priceRegexp.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	val, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
	if err != nil {
		return nil
	}
	return &Price{Value: val, Symbol: m[1]}
}

// DiscountPercent derives a percent-off string from an original/final price
// text pair, independent of currency. Any parse failure on either side
// yields the default "0%".
func DiscountPercent(original, final string) string {
	o, okO := leadingNumeral(original)
	d, okD := leadingNumeral(final)
	if okO && okD && o > 0 && d > 0 && d < o {
		return fmt.Sprintf("%d%%", int((1-d/o)*100))
	}
	return "0%"
}

func leadingNumeral(s string) (float64, bool) {
	m := numeralRegexp.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
