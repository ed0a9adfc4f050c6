package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusinessDay(t *testing.T) {
	cal := testCalendar()

	// 2024-01-14 воскресенье, 2024-01-15 понедельник
	assert.False(t, IsBusinessDay("2024-01-14", cal))
	assert.True(t, IsBusinessDay("2024-01-15", cal))
}

func TestIsBusinessDayHoliday(t *testing.T) {
	cal := testCalendar()

	require.True(t, IsBusinessDay("2024-01-16", cal))

	cal.Holidays["2024-01-16"] = struct{}{}
	assert.False(t, IsBusinessDay("2024-01-16", cal))
}

func TestIsBusinessDayInvalidDate(t *testing.T) {
	cal := testCalendar()

	assert.False(t, IsBusinessDay("not-a-date", cal))
	assert.False(t, IsBusinessDay("2024-02-30", cal))
}

func TestValidateBookingDate(t *testing.T) {
	cal := testCalendar()
	now := fixedNow() // 2024-01-15 10:00

	tests := []struct {
		name        string
		date        string
		wantValid   bool
		wantReason  Reason
		wantMessage string
	}{
		{
			name:        "same day is inside the minimum advance window",
			date:        "2024-01-15",
			wantReason:  ReasonTooSoon,
			wantMessage: "Appointments must be booked at least 2 hours in advance",
		},
		{
			name:      "two days ahead is valid",
			date:      "2024-01-17",
			wantValid: true,
		},
		{
			name:        "beyond the advance window",
			date:        "2024-05-15",
			wantReason:  ReasonTooFarAhead,
			wantMessage: "Cannot book more than 90 days in advance",
		},
		{
			name:        "garbage input",
			date:        "invalid-date",
			wantReason:  ReasonInvalidDateFormat,
			wantMessage: "Invalid date format",
		},
		{
			name:        "impossible calendar date",
			date:        "2024-02-30",
			wantReason:  ReasonInvalidDateFormat,
			wantMessage: "Invalid date format",
		},
		{
			name:       "yesterday",
			date:       "2024-01-14",
			wantReason: ReasonTooSoon, // advance-проверка срабатывает раньше проверки прошлого
		},
		{
			name:      "exactly at the advance window boundary",
			date:      "2024-04-14",
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateBookingDate(tt.date, cal, now)

			assert.Equal(t, tt.wantValid, got.Valid)
			if !tt.wantValid {
				assert.Equal(t, tt.wantReason, got.Reason)
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, got.Message)
				}
			}
		})
	}
}

func TestValidateBookingDateTomorrowWithLargeAdvance(t *testing.T) {
	cal := testCalendar()
	cal.MinAdvanceHours = 48
	now := fixedNow()

	// Завтрашняя полночь ближе, чем 48 часов
	got := ValidateBookingDate("2024-01-16", cal, now)
	assert.False(t, got.Valid)
	assert.Equal(t, ReasonTooSoon, got.Reason)
	assert.Contains(t, got.Message, "48 hours")
}
