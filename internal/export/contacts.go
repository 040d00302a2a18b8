package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/emersion/go-vcard"

	"github.com/wvermeer/huisboek/internal/booking"
	"github.com/wvermeer/huisboek/internal/config"
)

// Contacts renders the guests of all platform bookings as a vCard file.
// Repeat guests collapse into one card; owner-use rows and rows without any
// contact detail are skipped.
func (b *Builder) Contacts(bookings []booking.Booking) ([]byte, error) {
	var buf bytes.Buffer
	enc := vcard.NewEncoder(&buf)

	seen := map[string]bool{}
	count := 0
	for i := range bookings {
		bk := &bookings[i]
		if bk.OwnerUse {
			continue
		}
		name := strings.TrimSpace(bk.Guest)
		if name == "" && bk.Phone == "" && bk.Email == "" {
			continue
		}
		if name == "" {
			name = b.Translator.Msg(config.TKeyUnknownGuest)
		}

		key := strings.ToLower(name + "|" + bk.Email + "|" + bk.Phone)
		if seen[key] {
			continue
		}
		seen[key] = true

		card := make(vcard.Card)
		card.SetValue(vcard.FieldFormattedName, name)
		if bk.Phone != "" {
			card.AddValue(vcard.FieldTelephone, bk.Phone)
		}
		if bk.Email != "" {
			card.AddValue(vcard.FieldEmail, bk.Email)
		}
		if bk.CountryCode != "" {
			card.AddAddress(&vcard.Address{Country: bk.CountryCode})
		}
		vcard.ToV4(card)

		if err := enc.Encode(card); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
		count++
	}

	slog.Debug("Contacts file rendered",
		slog.String(config.LogKeyComponent, config.CompExport),
		slog.Int(config.LogKeyRecords, count),
		slog.Int(config.LogKeySizeBytes, buf.Len()),
	)
	return buf.Bytes(), nil
}
