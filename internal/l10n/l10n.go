// Package l10n formats the user-facing strings of the dashboard: month and
// weekday labels, event summaries for the calendar feed and EUR amounts in
// Dutch notation. Translations come from embedded go-i18n message files,
// one per supported language.
package l10n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/wvermeer/huisboek/internal/config"
)

//go:embed locales/*.json
var localeFS embed.FS

// Translator resolves message keys for one display language and formats
// numbers in that language's conventions.
type Translator struct {
	lang      string
	localizer *i18n.Localizer
	printer   *message.Printer
}

// New builds a Translator for the requested language, falling back to the
// default when the language is unknown.
func New(lang string) *Translator {
	supported := false
	for _, l := range config.SupportedLanguages {
		if l == lang {
			supported = true
			break
		}
	}
	if !supported {
		lang = config.DefaultLanguage
	}

	bundle := i18n.NewBundle(language.Dutch)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompL10n,
			config.LogKeyError, err,
		)
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompL10n,
				config.LogKeyFile, name,
			)
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompL10n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
		} else {
			slog.Debug(config.MsgLocaleLoaded,
				config.LogKeyComponent, config.CompL10n,
				config.LogKeyFile, name,
			)
		}
	}

	tag := language.Dutch
	if lang == "en" {
		tag = language.English
	}
	return &Translator{
		lang:      lang,
		localizer: i18n.NewLocalizer(bundle, lang, config.DefaultLanguage),
		printer:   message.NewPrinter(tag),
	}
}

// Lang reports the effective display language.
func (t *Translator) Lang() string {
	return t.lang
}

// Msg translates a key, returning the key itself when no translation exists.
func (t *Translator) Msg(key string) string {
	return t.MsgData(key, nil)
}

// MsgData translates a templated key.
func (t *Translator) MsgData(key string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompL10n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// MonthShort is the abbreviated month label (jun, dec).
func (t *Translator) MonthShort(m time.Month) string {
	return t.Msg(fmt.Sprintf("%s%d", config.TKeyMonthPrefix, int(m)))
}

// WeekdayShort is the abbreviated weekday label, Monday first.
func (t *Translator) WeekdayShort(wd time.Weekday) string {
	// time.Weekday counts Sunday=0; the labels count Monday=1.
	index := (int(wd)+6)%7 + 1
	return t.Msg(fmt.Sprintf("%s%d", config.TKeyWeekdayPfx, index))
}

// DateShort renders a date as "10 jun".
func (t *Translator) DateShort(d time.Time) string {
	return fmt.Sprintf("%d %s", d.Day(), t.MonthShort(d.Month()))
}

// DateLabel renders a date as "ma 10 jun 2024".
func (t *Translator) DateLabel(d time.Time) string {
	return fmt.Sprintf("%s %d %s %d", t.WeekdayShort(d.Weekday()), d.Day(), t.MonthShort(d.Month()), d.Year())
}

// EUR formats an amount as a localized euro string ("€ 1.250,50" in Dutch).
// Non-finite input renders as a zero amount, never "NaN".
func (t *Translator) EUR(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}
	return t.printer.Sprintf("€ %v", number.Decimal(x, number.Scale(2)))
}
