package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techydad05/nail-artist-website/internal/domain"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

func TestCheckSlotAvailable(t *testing.T) {
	cal := testCalendar()

	got := CheckSlot("2024-01-17", "10:00", cal, fixedNow(), nil, 0)

	assert.True(t, got.Available)
	assert.Empty(t, got.Reason)
}

func TestCheckSlotDateValidationPropagates(t *testing.T) {
	cal := testCalendar()

	got := CheckSlot("invalid-date", "10:00", cal, fixedNow(), nil, 0)
	assert.False(t, got.Available)
	assert.Equal(t, ReasonInvalidDateFormat, got.Reason)
	assert.Equal(t, "Invalid date format", got.Message)

	got = CheckSlot("2024-01-15", "15:00", cal, fixedNow(), nil, 0)
	assert.False(t, got.Available)
	assert.Equal(t, ReasonTooSoon, got.Reason)
}

func TestCheckSlotClosedDay(t *testing.T) {
	cal := testCalendar()

	// 2024-01-21 воскресенье
	got := CheckSlot("2024-01-21", "10:00", cal, fixedNow(), nil, 0)

	assert.False(t, got.Available)
	assert.Equal(t, ReasonClosedDay, got.Reason)
	assert.Equal(t, "Business is closed on this day", got.Message)
}

func TestCheckSlotOutsideHours(t *testing.T) {
	cal := testCalendar()

	tests := []string{"08:00", "18:00", "10:30", "23:00"}
	for _, slotTime := range tests {
		got := CheckSlot("2024-01-17", types.TimeString(slotTime), cal, fixedNow(), nil, 0)
		assert.False(t, got.Available, "time %s must be outside the slot grid", slotTime)
		assert.Equal(t, ReasonOutsideHours, got.Reason)
	}
}

func TestCheckSlotTakenAndExclude(t *testing.T) {
	cal := testCalendar()
	existing := []*domain.Appointment{
		testAppointment(1, "2024-01-17", "10:00", 60, domain.StatusConfirmed),
	}

	got := CheckSlot("2024-01-17", "10:00", cal, fixedNow(), existing, 0)
	assert.False(t, got.Available)
	assert.Equal(t, ReasonSlotTaken, got.Reason)
	assert.Equal(t, "Time slot is already booked", got.Message)

	// Исключение собственной записи освобождает слот (сценарий переноса)
	got = CheckSlot("2024-01-17", "10:00", cal, fixedNow(), existing, 1)
	assert.True(t, got.Available)
}

func TestCheckSlotIgnoresInactiveAppointments(t *testing.T) {
	cal := testCalendar()
	existing := []*domain.Appointment{
		testAppointment(1, "2024-01-17", "10:00", 60, domain.StatusCancelled),
		testAppointment(2, "2024-01-17", "10:00", 60, domain.StatusCompleted),
	}

	got := CheckSlot("2024-01-17", "10:00", cal, fixedNow(), existing, 0)
	assert.True(t, got.Available)
}

func TestCheckSlotIgnoresOtherDates(t *testing.T) {
	cal := testCalendar()
	existing := []*domain.Appointment{
		testAppointment(1, "2024-01-18", "10:00", 60, domain.StatusConfirmed),
	}

	got := CheckSlot("2024-01-17", "10:00", cal, fixedNow(), existing, 0)
	assert.True(t, got.Available)
}

func TestListAvailableSlots(t *testing.T) {
	cal := testCalendar()
	existing := []*domain.Appointment{
		testAppointment(1, "2024-01-17", "10:00", 60, domain.StatusConfirmed),
		testAppointment(2, "2024-01-17", "14:00", 60, domain.StatusPending),
		testAppointment(3, "2024-01-17", "12:00", 60, domain.StatusCancelled),
	}

	got := ListAvailableSlots("2024-01-17", cal, fixedNow(), existing)

	assert.True(t, got.BusinessDay)
	assert.Equal(t, 9, got.TotalSlots)
	assert.Equal(t, 2, got.BookedCount)
	require.Len(t, got.Slots, 7)
	assert.NotContains(t, got.Slots, types.TimeString("10:00"))
	assert.NotContains(t, got.Slots, types.TimeString("14:00"))
	assert.Contains(t, got.Slots, types.TimeString("12:00"))
	assert.Equal(t, types.TimeString("09:00"), got.Open)
	assert.Equal(t, types.TimeString("18:00"), got.Close)
}

func TestListAvailableSlotsClosedDay(t *testing.T) {
	cal := testCalendar()

	got := ListAvailableSlots("2024-01-21", cal, fixedNow(), nil)

	assert.False(t, got.BusinessDay)
	assert.Empty(t, got.Slots)
	assert.Equal(t, ReasonClosedDay, got.Reason)
	assert.Equal(t, "Business is closed on this day", got.Message)
}

func TestListAvailableSlotsInvalidDate(t *testing.T) {
	cal := testCalendar()

	got := ListAvailableSlots("garbage", cal, fixedNow(), nil)

	assert.False(t, got.BusinessDay)
	assert.Empty(t, got.Slots)
	assert.Equal(t, ReasonInvalidDateFormat, got.Reason)
}

func TestListAvailableSlotsIdempotent(t *testing.T) {
	cal := testCalendar()
	existing := []*domain.Appointment{
		testAppointment(1, "2024-01-17", "11:00", 60, domain.StatusConfirmed),
	}

	first := ListAvailableSlots("2024-01-17", cal, fixedNow(), existing)
	second := ListAvailableSlots("2024-01-17", cal, fixedNow(), existing)

	assert.Equal(t, first, second)
}
