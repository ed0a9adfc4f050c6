package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techydad05/nail-artist-website/internal/config"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

func TestFromConfig(t *testing.T) {
	cal, err := FromConfig(config.CalendarConfig{
		DailyOpen:           "09:00",
		DailyClose:          "18:00",
		SlotDurationMinutes: 60,
		BufferMinutes:       15,
		ClosedWeekdays:      []int{0},
		Holidays:            []string{"2024-12-25"},
		SpecialHours: map[string]config.SpecialDayConf{
			"2024-12-24": {Open: "10:00", Close: "14:00"},
		},
		MinAdvanceHours: 2,
		MaxAdvanceDays:  90,
	})
	require.NoError(t, err)

	assert.True(t, cal.IsHoliday("2024-12-25"))
	assert.False(t, cal.IsHoliday("2024-12-26"))

	open, close := cal.HoursFor("2024-12-24")
	assert.Equal(t, types.TimeString("10:00"), open)
	assert.Equal(t, types.TimeString("14:00"), close)

	open, close = cal.HoursFor("2024-12-23")
	assert.Equal(t, types.TimeString("09:00"), open)
	assert.Equal(t, types.TimeString("18:00"), close)
}

func TestFromConfigDefaults(t *testing.T) {
	cal, err := FromConfig(config.CalendarConfig{
		DailyOpen:  "09:00",
		DailyClose: "18:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 60, cal.SlotDurationMinutes)
	assert.Equal(t, 15, cal.BufferMinutes)
	assert.Equal(t, 2, cal.MinAdvanceHours)
	assert.Equal(t, 90, cal.MaxAdvanceDays)
}

func TestFromConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.CalendarConfig
	}{
		{
			name: "open after close",
			cfg:  config.CalendarConfig{DailyOpen: "18:00", DailyClose: "09:00"},
		},
		{
			name: "open equals close",
			cfg:  config.CalendarConfig{DailyOpen: "09:00", DailyClose: "09:00"},
		},
		{
			name: "bad open time",
			cfg:  config.CalendarConfig{DailyOpen: "9am", DailyClose: "18:00"},
		},
		{
			name: "weekday out of range",
			cfg: config.CalendarConfig{
				DailyOpen: "09:00", DailyClose: "18:00",
				ClosedWeekdays: []int{7},
			},
		},
		{
			name: "malformed holiday",
			cfg: config.CalendarConfig{
				DailyOpen: "09:00", DailyClose: "18:00",
				Holidays: []string{"25.12.2024"},
			},
		},
		{
			name: "inverted special hours",
			cfg: config.CalendarConfig{
				DailyOpen: "09:00", DailyClose: "18:00",
				SpecialHours: map[string]config.SpecialDayConf{
					"2024-12-24": {Open: "16:00", Close: "10:00"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromConfig(tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidCalendar)
		})
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, 15, parsed.Day())

	_, err = ParseDate("2024-02-30")
	assert.Error(t, err)

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}
