package booking

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wvermeer/huisboek/internal/config"
)

// nlDatePattern matches the export's positional D-M-YYYY date cells.
// Day/month/year are extracted by position, never via generic parsing, to
// avoid locale ambiguity between 03-04 and 04-03.
var nlDatePattern = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{4})$`)

// genericDateLayouts are tried only when the strict pattern fails.
var genericDateLayouts = []string{
	config.DateFormatISO,
	config.DateFormatFullT,
	config.DateFormatRFC3339,
}

// ParseLocalDate coerces a spreadsheet cell into a local-midnight date.
// It accepts time.Time values unchanged (truncated) and strings in the
// export's D-M-YYYY format, with an optional trailing time component that is
// discarded. It never panics; the second return is false for empty,
// unparsable or zero input.
func ParseLocalDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return StartOfDay(d), true
	case string:
		return parseDateString(d)
	default:
		return time.Time{}, false
	}
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// The date part is everything before the first space ("01-06-2024 14:00").
	datePart := s
	if i := strings.IndexByte(s, ' '); i >= 0 {
		datePart = s[:i]
	}

	if m := nlDatePattern.FindStringSubmatch(datePart); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		// time.Date normalizes overflow (32-01 becomes 01-02), matching the
		// generic construction the source format implies.
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
	}

	for _, layout := range genericDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return StartOfDay(t), true
		}
	}
	return time.Time{}, false
}

// FormatDateLocal renders a date back into the export's DD-MM-YYYY form.
func FormatDateLocal(t time.Time) string {
	return t.Format(config.DateFormatNL)
}

// StartOfDay truncates a time to its local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays shifts a date by n calendar days, staying on local midnights even
// across DST transitions.
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, t.Location())
}

// DiffDays returns the non-negative number of calendar days between two
// dates. The calculation maps both local midnights onto UTC so a timezone
// offset can never shift a day boundary.
func DiffDays(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	d := int(ub.Sub(ua) / (24 * time.Hour))
	if d < 0 {
		return 0
	}
	return d
}

// DayKey renders the ISO date string used to key daily aggregates and the
// pricing cache. Derived from local date components, never UTC conversion.
func DayKey(t time.Time) string {
	return t.Format(config.DateFormatISO)
}

// StartOfWeekMonday returns the Monday of the week containing t.
func StartOfWeekMonday(t time.Time) time.Time {
	x := StartOfDay(t)
	diff := int(time.Monday) - int(x.Weekday())
	if x.Weekday() == time.Sunday {
		diff = -6
	}
	return AddDays(x, diff)
}

// EndOfWeekSunday returns the Sunday of the week containing t.
func EndOfWeekSunday(t time.Time) time.Time {
	return AddDays(StartOfWeekMonday(t), 6)
}

// ISOWeekNumber returns the ISO-8601 week number of a date: weeks start on
// Monday and week 1 contains the year's first Thursday.
func ISOWeekNumber(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// ISOWeek describes one week of a target year's week list.
type ISOWeek struct {
	Week         int
	Start        time.Time
	EndExclusive time.Time
}

// ISOWeeksOfYear enumerates every ISO week whose Thursday falls in the given
// year, ascending by week number. January 4th is always inside week 1, so the
// walk starts at its Monday.
func ISOWeeksOfYear(year int) []ISOWeek {
	start := StartOfWeekMonday(time.Date(year, time.January, 4, 0, 0, 0, 0, time.Local))

	var weeks []ISOWeek
	for i := 0; i < 54; i++ {
		end := AddDays(start, 7)
		thursday := AddDays(start, 3)
		if thursday.Year() == year {
			weeks = append(weeks, ISOWeek{
				Week:         ISOWeekNumber(start),
				Start:        start,
				EndExclusive: end,
			})
		}
		if start.Year() > year {
			break
		}
		start = end
	}
	return weeks
}
