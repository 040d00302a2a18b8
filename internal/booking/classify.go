package booking

import (
	"strings"

	"github.com/wvermeer/huisboek/internal/config"
)

// IsOwnerUse reports whether a raw row represents owner personal use rather
// than a paying platform booking. A row is owner-use when its income cell, as
// a string, trims to empty or a no-charge dash, or when its booking label
// contains the owner keyword. Pure function; the checks are independent and
// order-insensitive.
func IsOwnerUse(row RawRow) bool {
	income := strings.TrimSpace(coerceString(firstValue(row, config.ColsIncome)))
	if income == "" || income == config.NoChargeDash || income == config.NoChargeEmDash {
		return true
	}

	label := strings.ToLower(coerceString(firstValue(row, config.ColsLabel)))
	return strings.Contains(label, config.OwnerUseKeyword)
}
