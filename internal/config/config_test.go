package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wvermeer/huisboek/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalProdid", config.ICalProdid},
		{"DefaultPort", config.DefaultPort},
		{"PricingFilePattern", config.PricingFilePattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDomainConstants_Sanity pins the revenue and occupancy figures the whole
// aggregation layer depends on. A silent change here shifts every KPI.
func TestDomainConstants_Sanity(t *testing.T) {
	assert.Equal(t, 0.76, config.NetFactor, "Net retention factor must stay at 0.76")
	assert.Equal(t, 365, config.DaysInYear, "Occupancy totals intentionally ignore leap years")
	assert.Equal(t, 7, config.NightsPerWeek)
}

// TestSeasonMonths_CoverFullYear verifies the four seasons partition all
// twelve months with no overlap.
func TestSeasonMonths_CoverFullYear(t *testing.T) {
	seen := make(map[time.Month]string)
	for season, months := range config.SeasonMonths {
		for _, m := range months {
			prev, dup := seen[m]
			assert.False(t, dup, "Month %s assigned to both %s and %s", m, prev, season)
			seen[m] = season
		}
	}
	assert.Len(t, seen, 12, "Every month must belong to exactly one season")
}

// TestColumnAliases_NotEmpty ensures every canonical field has at least one
// accepted header spelling, and the primary Dutch headers come first.
func TestColumnAliases_NotEmpty(t *testing.T) {
	aliases := map[string][]string{
		"arrival":   config.ColsArrival,
		"departure": config.ColsDeparture,
		"nights":    config.ColsNights,
		"income":    config.ColsIncome,
		"label":     config.ColsLabel,
		"guest":     config.ColsGuest,
		"adults":    config.ColsAdults,
		"children":  config.ColsChildren,
		"infants":   config.ColsInfants,
		"phone":     config.ColsPhone,
		"email":     config.ColsEmail,
		"country":   config.ColsCountry,
	}
	for field, list := range aliases {
		assert.NotEmpty(t, list, "Field %s has no header aliases", field)
	}
	assert.Equal(t, "Aankomst", config.ColsArrival[0])
	assert.Equal(t, "Vertrek", config.ColsDeparture[0])
	assert.Equal(t, "Inkomsten", config.ColsIncome[0])
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Huisboek/"), "UserAgent must start with AppName/")
}

// TestTimeoutsAndLimits ensures operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.HTTPTimeout, 0*time.Second, "HTTPTimeout must be positive")
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")
	assert.Greater(t, config.MaxUploadSize, 1024*1024, "Upload limit should allow real exports")
	assert.Greater(t, config.MaxPricingResponseSize, 0, "Pricing response limit must be positive")
	assert.Less(t, int64(config.MaxPricingResponseSize), int64(1*1024*1024*1024))
}

// TestStubCalendar_IsValid keeps the empty-state feed a parsable VCALENDAR.
func TestStubCalendar_IsValid(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.StubVCalendar, "BEGIN:VCALENDAR"))
	assert.True(t, strings.HasSuffix(config.StubVCalendar, "END:VCALENDAR\r\n"))
	assert.Contains(t, config.StubVCalendar, config.ICalProdid)
}
