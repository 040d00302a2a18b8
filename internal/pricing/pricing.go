// Package pricing maintains the per-year seasonal price cache used to
// annotate calendar cells. Pricing data lives outside the spreadsheet, one
// JSON document per calendar year, fetched lazily the first time a year is
// referenced. A year whose fetch fails is cached empty so the calendar
// degrades to "no data" instead of retrying on every lookup.
package pricing

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/wvermeer/huisboek/internal/config"
)

// Record is one day's pricing entry.
type Record struct {
	Date      string  `json:"date"`
	Season    string  `json:"season"`
	MinNights int     `json:"min_nights"`
	DayPrice  float64 `json:"day_price"`
	WeekPrice float64 `json:"week_price"`
}

// decodeRecords reads a year's JSON array. Field names vary across vintages
// of the pricing files (Dutch and English spellings), so each field resolves
// through an ordered alias list, first present key wins.
func decodeRecords(r io.Reader) ([]Record, error) {
	var raw []map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(raw))
	for _, m := range raw {
		rec := Record{
			Date:      strField(m, config.PricingKeysDate),
			Season:    strField(m, config.PricingKeysSeason),
			MinNights: int(numField(m, config.PricingKeysMinNights)),
			DayPrice:  numField(m, config.PricingKeysDayPrice),
			WeekPrice: numField(m, config.PricingKeysWeekPrice),
		}
		if rec.Date == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func strField(m map[string]any, aliases []string) string {
	for _, key := range aliases {
		if v, ok := m[key]; ok {
			switch s := v.(type) {
			case string:
				if t := strings.TrimSpace(s); t != "" {
					return t
				}
			case float64:
				return strconv.FormatFloat(s, 'f', -1, 64)
			}
		}
	}
	return ""
}

func numField(m map[string]any, aliases []string) float64 {
	for _, key := range aliases {
		switch v := m[key].(type) {
		case float64:
			return v
		case string:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				return f
			}
		}
	}
	return 0
}
