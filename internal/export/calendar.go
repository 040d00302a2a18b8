// Package export renders the booking list into standard interchange formats:
// an iCalendar occupancy feed and a vCard file of guest contacts. Both are
// rebuilt whenever the application state changes and served from the HTTP
// layer with caching headers.
package export

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"

	"github.com/emersion/go-ical"

	"github.com/wvermeer/huisboek/internal/booking"
	"github.com/wvermeer/huisboek/internal/config"
	"github.com/wvermeer/huisboek/internal/l10n"
)

// Builder renders exports for one display language.
type Builder struct {
	Clock      Clock
	Translator *l10n.Translator
}

// NewBuilder creates a Builder with a real clock.
func NewBuilder(tr *l10n.Translator) *Builder {
	return &Builder{Clock: RealClock{}, Translator: tr}
}

// Calendar renders all bookings as an iCalendar feed: one all-day event per
// stay, DTSTART on the arrival day and DTEND on the (exclusive) checkout day,
// matching how calendar clients model hotel nights. An empty booking list
// yields the minimal valid stub so subscribed clients never see a broken feed.
func (b *Builder) Calendar(bookings []booking.Booking) ([]byte, error) {
	if len(bookings) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(b.Clock.Now().UTC())

	for i := range bookings {
		event := b.bookingEvent(&bookings[i])
		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug("Calendar feed rendered",
		slog.String(config.LogKeyComponent, config.CompExport),
		slog.Int(config.LogKeyBookings, len(bookings)),
		slog.Int(config.LogKeySizeBytes, buf.Len()),
	)
	return buf.Bytes(), nil
}

func (b *Builder) bookingEvent(bk *booking.Booking) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, eventUID(bk))
	event.Props.SetText(config.PropSummary, b.summary(bk))

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(bk.Start)
	event.Props.Set(dtStartProp)

	dtEndProp := ical.NewProp(config.PropDTEnd)
	dtEndProp.SetDate(bk.End)
	event.Props.Set(dtEndProp)

	return event
}

func (b *Builder) summary(bk *booking.Booking) string {
	if bk.OwnerUse {
		return b.Translator.MsgData(config.TKeyEvtOwnerUse, map[string]any{
			"Nights": bk.StayNights(),
		})
	}
	guest := bk.Guest
	if guest == "" {
		guest = b.Translator.Msg(config.TKeyUnknownGuest)
	}
	return b.Translator.MsgData(config.TKeyEvtBooked, map[string]any{
		"Guest":  guest,
		"Nights": bk.StayNights(),
	})
}

// eventUID derives a UID that is stable across re-uploads of the same sheet,
// so calendar clients update events in place instead of duplicating them.
func eventUID(bk *booking.Booking) string {
	input := fmt.Sprintf(config.FormatHashInput,
		config.UIDSalt,
		bk.Start.Format(config.DateFormatISO),
		bk.End.Format(config.DateFormatISO),
		bk.Guest,
	)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf(config.FormatUID, fmt.Sprintf("%x", hash[:config.UIDHashLength]), config.ICalDomain)
}
