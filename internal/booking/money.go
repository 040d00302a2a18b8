package booking

import (
	"math"
	"strconv"
	"strings"

	"github.com/wvermeer/huisboek/internal/config"
)

// moneyCleaner strips the decorations of a European money cell: the currency
// symbol, the thousands separator dot, and whitespace; the decimal comma
// becomes a dot.
var moneyCleaner = strings.NewReplacer(
	"€", "",
	".", "",
	",", ".",
	" ", "",
	"\t", "",
	" ", "", // non-breaking space used by some locales before €
)

// ParseMoney coerces a spreadsheet cell into an amount. Already-numeric input
// passes through unchanged (finite values only), so the function is
// idempotent. The no-charge sentinels ("-", "—") and empty cells report no
// value rather than zero, letting callers distinguish "free" from "€0".
func ParseMoney(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n) && !math.IsInf(n, 0)
	case float32:
		return ParseMoney(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		return parseMoneyString(n)
	default:
		return 0, false
	}
}

func parseMoneyString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == config.NoChargeDash || s == config.NoChargeEmDash {
		return 0, false
	}

	cleaned := moneyCleaner.Replace(s)
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
