package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techydad05/nail-artist-website/internal/domain"
)

func TestFindConflictsOverlapWithinBufferedWindow(t *testing.T) {
	cal := testCalendar() // буфер 15 минут
	existing := []*domain.Appointment{
		testAppointment(1, "2024-01-17", "10:30", 60, domain.StatusConfirmed),
		testAppointment(2, "2024-01-17", "12:00", 60, domain.StatusConfirmed),
	}

	// Кандидат 10:00 на 60 минут занимает окно 10:00-11:15 (с буфером)
	got := FindConflicts("2024-01-17", "10:00", 60, cal, existing, 0)

	require.True(t, got.HasConflict)
	require.Len(t, got.Conflicts, 1)
	assert.Equal(t, int64(1), got.Conflicts[0].ID)
}

func TestFindConflictsEarlierRunningAppointment(t *testing.T) {
	cal := testCalendar()
	existing := []*domain.Appointment{
		// Длинная запись 09:00-11:00: к старту кандидата еще идет
		testAppointment(1, "2024-01-17", "09:00", 120, domain.StatusConfirmed),
	}

	got := FindConflicts("2024-01-17", "10:00", 60, cal, existing, 0)

	assert.True(t, got.HasConflict)
}

func TestFindConflictsEarlierFinishedAppointment(t *testing.T) {
	cal := testCalendar()
	existing := []*domain.Appointment{
		// Запись 08:00-09:00 вместе с буфером заканчивается в 09:15,
		// кандидат 10:00 не пересекается
		testAppointment(1, "2024-01-17", "08:00", 60, domain.StatusConfirmed),
	}

	got := FindConflicts("2024-01-17", "10:00", 60, cal, existing, 0)

	assert.False(t, got.HasConflict)
	assert.Empty(t, got.Conflicts)
}

func TestFindConflictsTouchingBoundariesDoNotConflict(t *testing.T) {
	cal := testCalendar()
	existing := []*domain.Appointment{
		// С буфером заканчивается ровно в 10:00
		testAppointment(1, "2024-01-17", "08:45", 60, domain.StatusConfirmed),
		// Начинается ровно в конце буферного окна кандидата (11:15)
		testAppointment(2, "2024-01-17", "11:15", 60, domain.StatusConfirmed),
	}

	got := FindConflicts("2024-01-17", "10:00", 60, cal, existing, 0)

	assert.False(t, got.HasConflict)
}

func TestFindConflictsSkipsInactiveAndExcluded(t *testing.T) {
	cal := testCalendar()
	existing := []*domain.Appointment{
		testAppointment(1, "2024-01-17", "10:00", 60, domain.StatusCancelled),
		testAppointment(2, "2024-01-17", "10:30", 60, domain.StatusConfirmed),
	}

	got := FindConflicts("2024-01-17", "10:00", 60, cal, existing, 2)

	assert.False(t, got.HasConflict)
}

func TestFindConflictsOtherDateIgnored(t *testing.T) {
	cal := testCalendar()
	existing := []*domain.Appointment{
		testAppointment(1, "2024-01-18", "10:00", 60, domain.StatusConfirmed),
	}

	got := FindConflicts("2024-01-17", "10:00", 60, cal, existing, 0)

	assert.False(t, got.HasConflict)
}

func TestFindConflictsListsEveryConflict(t *testing.T) {
	cal := testCalendar()
	existing := []*domain.Appointment{
		testAppointment(1, "2024-01-17", "10:00", 60, domain.StatusPending),
		testAppointment(2, "2024-01-17", "10:30", 60, domain.StatusConfirmed),
		testAppointment(3, "2024-01-17", "13:00", 60, domain.StatusConfirmed),
	}

	got := FindConflicts("2024-01-17", "10:00", 90, cal, existing, 0)

	require.True(t, got.HasConflict)
	assert.Len(t, got.Conflicts, 2)
}
