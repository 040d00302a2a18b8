package booking

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/wvermeer/huisboek/internal/config"
)

// Normalizer maps raw spreadsheet rows onto canonical Booking records. The
// accepted header spellings per field are resolved once at construction, not
// scattered over per-call lookups.
type Normalizer struct {
	arrival   []string
	departure []string
	nights    []string
	income    []string
	label     []string
	guest     []string
	adults    []string
	children  []string
	infants   []string
	phone     []string
	email     []string
	country   []string
}

// NewNormalizer builds a Normalizer over the configured column aliases.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		arrival:   config.ColsArrival,
		departure: config.ColsDeparture,
		nights:    config.ColsNights,
		income:    config.ColsIncome,
		label:     config.ColsLabel,
		guest:     config.ColsGuest,
		adults:    config.ColsAdults,
		children:  config.ColsChildren,
		infants:   config.ColsInfants,
		phone:     config.ColsPhone,
		email:     config.ColsEmail,
		country:   config.ColsCountry,
	}
}

// Row normalizes one raw row. The second return is false for rows that must
// be discarded: missing or unparsable arrival/departure, or a departure not
// strictly after the arrival.
func (n *Normalizer) Row(row RawRow) (Booking, bool) {
	start, okStart := ParseLocalDate(firstValue(row, n.arrival))
	end, okEnd := ParseLocalDate(firstValue(row, n.departure))
	if !okStart || !okEnd || !end.After(start) {
		return Booking{}, false
	}

	nights := DiffDays(start, end)
	if v, ok := ParseMoney(firstValue(row, n.nights)); ok && v > 0 {
		nights = int(v)
	}

	owner := IsOwnerUse(row)

	var gross float64
	var grossKnown bool
	if !owner {
		gross, grossKnown = ParseMoney(firstValue(row, n.income))
		if !grossKnown {
			gross = 0
		}
	}

	label := strings.TrimSpace(coerceString(firstValue(row, n.label)))

	b := Booking{
		Start:       start,
		End:         end,
		Nights:      nights,
		Gross:       gross,
		Net:         gross * config.NetFactor,
		GrossKnown:  grossKnown,
		OwnerUse:    owner,
		Guest:       strings.TrimSpace(coerceString(firstValue(row, n.guest))),
		Channel:     channelOf(label, owner),
		Label:       label,
		CountryCode: strings.ToUpper(strings.TrimSpace(coerceString(firstValue(row, n.country)))),
		Phone:       normalizePhone(firstValue(row, n.phone)),
		Email:       strings.TrimSpace(coerceString(firstValue(row, n.email))),
		Adults:      intField(row, n.adults),
		Children:    intField(row, n.children),
		Infants:     intField(row, n.infants),
	}
	return b, true
}

// Rows normalizes a full upload, silently dropping unusable rows. Dropped
// rows are not errors: the export routinely contains note lines and blanks.
func (n *Normalizer) Rows(rows []RawRow) []Booking {
	bookings := make([]Booking, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		b, ok := n.Row(row)
		if !ok {
			dropped++
			continue
		}
		bookings = append(bookings, b)
	}

	if dropped > 0 {
		slog.Debug(config.MsgRowSkipped,
			config.LogKeyComponent, config.CompBooking,
			config.LogKeyRows, len(rows),
			config.LogKeyDropped, dropped,
		)
	}
	return bookings
}

// channelOf extracts the platform name from a composite "Ref | Channel"
// booking label.
func channelOf(label string, owner bool) string {
	if i := strings.Index(label, config.ChannelSeparator); i >= 0 {
		if c := strings.TrimSpace(label[i+len(config.ChannelSeparator):]); c != "" {
			return c
		}
	}
	if label == "" && owner {
		return config.OwnerUseChannel
	}
	return label
}

// normalizePhone strips everything but digits and a leading plus sign.
func normalizePhone(v any) string {
	s := coerceString(v)
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '+' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// intField reads a numeric column, tolerating string cells; unusable or
// negative values collapse to zero.
func intField(row RawRow, aliases []string) int {
	v, ok := ParseMoney(firstValue(row, aliases))
	if !ok || v < 0 {
		return 0
	}
	return int(v)
}

// firstValue returns the first present, non-empty cell among the accepted
// header spellings for a field.
func firstValue(row RawRow, aliases []string) any {
	for _, key := range aliases {
		v, ok := row[key]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}

// coerceString renders a cell for textual use. Numeric cells avoid the
// scientific notation fmt would produce for large phone-number cells.
func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case int:
		return strconv.Itoa(s)
	case int64:
		return strconv.FormatInt(s, 10)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
