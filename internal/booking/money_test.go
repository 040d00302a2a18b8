package booking_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wvermeer/huisboek/internal/booking"
)

func TestParseMoney_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
		ok    bool
	}{
		{"euro with thousands and decimal comma", "€1.250,50", 1250.50, true},
		{"decimal comma only", "300,25", 300.25, true},
		{"thousands dot only", "1.250", 1250, true},
		{"plain integer", "300", 300, true},
		{"euro with space", "€ 450", 450, true},
		{"negative adjustment", "-50,00", -50, true},
		{"empty", "", 0, false},
		{"dash placeholder", "-", 0, false},
		{"em-dash placeholder", "—", 0, false},
		{"whitespace only", "   ", 0, false},
		{"garbage", "n.v.t.", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := booking.ParseMoney(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseMoney_NumericPassthrough(t *testing.T) {
	got, ok := booking.ParseMoney(1250.5)
	assert.True(t, ok)
	assert.Equal(t, 1250.5, got)

	got, ok = booking.ParseMoney(300)
	assert.True(t, ok)
	assert.Equal(t, 300.0, got)

	_, ok = booking.ParseMoney(math.NaN())
	assert.False(t, ok)
	_, ok = booking.ParseMoney(math.Inf(1))
	assert.False(t, ok)
}

func TestParseMoney_Idempotent(t *testing.T) {
	// Feeding a previously parsed value back in must not change it.
	first, ok := booking.ParseMoney("€1.250,50")
	assert.True(t, ok)
	second, ok := booking.ParseMoney(first)
	assert.True(t, ok)
	assert.Equal(t, first, second)
}
