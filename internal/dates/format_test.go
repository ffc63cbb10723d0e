package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		locale string
		want   string
	}{
		{"afternoon en", "14:30", "en-US", "2:30 PM"},
		{"midnight en", "00:00", "en-US", "12:00 AM"},
		{"noon en", "12:00", "en", "12:00 PM"},
		{"single digit hour en", "9:05", "en-US", "9:05 AM"},
		{"24-hour for spanish", "14:30", "es", "14:30"},
		{"24-hour for german pads hour", "9:05", "de", "09:05"},
		{"hours out of range unchanged", "25:00", "en-US", "25:00"},
		{"minutes out of range unchanged", "9:61", "en-US", "9:61"},
		{"sentinel 24:00 unchanged", "24:00", "de", "24:00"},
		{"garbage unchanged", "garbage", "en-US", "garbage"},
		{"missing minutes unchanged", "14:3", "es", "14:3"},
		{"empty unchanged", "", "es", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.input, tt.locale))
		})
	}
}

func TestFormatDateWithWeekday(t *testing.T) {
	monday := time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC)
	wednesday := time.Date(2023, time.May, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		date   time.Time
		locale string
		want   string
	}{
		{"spanish", monday, "es", "Lunes, 15 de mayo, 2023"},
		{"english", monday, "en", "Monday, May 15, 2023"},
		{"german", monday, "de", "Montag, 15. Mai 2023"},
		{"accented weekday capitalized", wednesday, "es", "Miércoles, 17 de mayo, 2023"},
		{"unknown locale falls back to spanish", monday, "fr", "Lunes, 15 de mayo, 2023"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDateWithWeekday(tt.date, tt.locale))
		})
	}
}
