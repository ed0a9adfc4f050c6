package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techydad05/nail-artist-website/internal/config"
	"github.com/techydad05/nail-artist-website/internal/domain"
	"github.com/techydad05/nail-artist-website/internal/schedule"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

type fakeAppointmentRepo struct {
	existing []*domain.Appointment
	err      error
}

func (f *fakeAppointmentRepo) ListWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.existing, nil
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testCalendar(t *testing.T) *schedule.Calendar {
	t.Helper()

	cal, err := schedule.FromConfig(config.CalendarConfig{
		DailyOpen:           "09:00",
		DailyClose:          "18:00",
		SlotDurationMinutes: 60,
		BufferMinutes:       15,
		ClosedWeekdays:      []int{0},
		MinAdvanceHours:     2,
		MaxAdvanceDays:      90,
	})
	require.NoError(t, err)
	return cal
}

func newTestUseCase(repo *fakeAppointmentRepo, t *testing.T) *UseCase {
	uc := NewUseCase(repo, testCalendar(t), noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)}
	return uc
}

func TestExecute_OpenDay(t *testing.T) {
	repo := &fakeAppointmentRepo{
		existing: []*domain.Appointment{
			{
				ID:        1,
				Date:      time.Date(2024, 1, 17, 0, 0, 0, 0, time.Local),
				StartTime: types.TimeString("10:00"),
				Status:    domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(repo, t)

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-01-17"})

	require.NoError(t, err)
	assert.True(t, resp.Day.BusinessDay)
	assert.Equal(t, 9, resp.Day.TotalSlots)
	assert.Equal(t, 1, resp.Day.BookedCount)
	assert.Len(t, resp.Day.Slots, 8)
	assert.NotContains(t, resp.Day.Slots, types.TimeString("10:00"))
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, t)

	// Воскресенье
	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-01-21"})

	require.NoError(t, err)
	assert.False(t, resp.Day.BusinessDay)
	assert.Empty(t, resp.Day.Slots)
	assert.Equal(t, schedule.ReasonClosedDay, resp.Day.Reason)
}

func TestExecute_InvalidDate(t *testing.T) {
	// Репозиторий с ошибкой: до хранилища дойти не должны
	uc := newTestUseCase(&fakeAppointmentRepo{err: assert.AnError}, t)

	resp, err := uc.Execute(context.Background(), &Request{Date: "17-01-2024"})

	require.NoError(t, err)
	assert.False(t, resp.Day.BusinessDay)
	assert.Equal(t, schedule.ReasonInvalidDateFormat, resp.Day.Reason)
	assert.Equal(t, "Invalid date format", resp.Day.Message)
}

func TestExecute_EmptyDate(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, t)

	_, err := uc.Execute(context.Background(), &Request{Date: "  "})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryError(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{err: assert.AnError}, t)

	_, err := uc.Execute(context.Background(), &Request{Date: "2024-01-17"})

	assert.ErrorIs(t, err, ErrInternal)
}
