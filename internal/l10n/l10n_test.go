package l10n

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wvermeer/huisboek/internal/config"
)

// TestLocales_Integrity verifies every locale file carries the same key set,
// so switching languages can never surface a raw key.
func TestLocales_Integrity(t *testing.T) {
	keysByFile := map[string]map[string]bool{}

	entries, err := localeFS.ReadDir("locales")
	require.NoError(t, err)
	require.Len(t, entries, len(config.SupportedLanguages))

	for _, entry := range entries {
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		require.NoError(t, err)

		var messages map[string]string
		require.NoError(t, json.Unmarshal(data, &messages), entry.Name())

		keys := map[string]bool{}
		for k := range messages {
			keys[k] = true
		}
		keysByFile[entry.Name()] = keys
	}

	reference := keysByFile["active.nl.json"]
	require.NotEmpty(t, reference)
	for name, keys := range keysByFile {
		assert.Equal(t, reference, keys, "key set of %s diverges from the Dutch reference", name)
	}

	// Every key the code references must exist.
	for m := 1; m <= 12; m++ {
		assert.Contains(t, reference, config.TKeyMonthPrefix+strconv.Itoa(m))
	}
	for d := 1; d <= 7; d++ {
		assert.Contains(t, reference, config.TKeyWeekdayPfx+strconv.Itoa(d))
	}
	for _, key := range []string{config.TKeyEvtBooked, config.TKeyEvtOwnerUse, config.TKeyNoPriceData, config.TKeyUnknownGuest} {
		assert.Contains(t, reference, key)
	}
}

func TestNew_FallsBackToDefaultLanguage(t *testing.T) {
	tr := New("de")
	assert.Equal(t, config.DefaultLanguage, tr.Lang())
}

func TestTranslator_Labels(t *testing.T) {
	nl := New("nl")
	assert.Equal(t, "jun", nl.MonthShort(time.June))
	assert.Equal(t, "ma", nl.WeekdayShort(time.Monday))
	assert.Equal(t, "zo", nl.WeekdayShort(time.Sunday))

	d := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "10 jun", nl.DateShort(d))
	assert.Equal(t, "ma 10 jun 2024", nl.DateLabel(d))

	en := New("en")
	assert.Equal(t, "Jun", en.MonthShort(time.June))
	assert.Equal(t, "Mon 10 Jun 2024", en.DateLabel(d))
}

func TestTranslator_TemplatedMessages(t *testing.T) {
	nl := New("nl")
	got := nl.MsgData(config.TKeyEvtBooked, map[string]any{"Guest": "A. de Vries", "Nights": 3})
	assert.Equal(t, "Geboekt: A. de Vries (3 nachten)", got)

	got = nl.MsgData(config.TKeyEvtOwnerUse, map[string]any{"Nights": 7})
	assert.Equal(t, "Eigen gebruik (7 nachten)", got)
}

func TestTranslator_MissingKeyReturnsKey(t *testing.T) {
	nl := New("nl")
	assert.Equal(t, "does_not_exist", nl.Msg("does_not_exist"))
}

func TestTranslator_EUR(t *testing.T) {
	nl := New("nl")
	assert.Equal(t, "€ 1.250,50", nl.EUR(1250.50))
	assert.Equal(t, "€ 0,00", nl.EUR(0))

	en := New("en")
	assert.Equal(t, "€ 1,250.50", en.EUR(1250.50))
}

func TestTranslator_EURNonFinite(t *testing.T) {
	nl := New("nl")
	nan := nl.EUR(divide(0, 0))
	assert.NotContains(t, nan, "NaN")
	assert.Equal(t, nl.EUR(0), nan)
}

func divide(a, b float64) float64 { return a / b }
