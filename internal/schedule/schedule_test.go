package schedule

import (
	"time"

	"github.com/techydad05/nail-artist-website/internal/domain"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

// testCalendar календарь с дефолтными часами салона:
// 09:00-18:00, часовые слоты, буфер 15 минут, воскресенье выходной
func testCalendar() *Calendar {
	return &Calendar{
		DailyOpen:           "09:00",
		DailyClose:          "18:00",
		SlotDurationMinutes: 60,
		BufferMinutes:       15,
		ClosedWeekdays:      []time.Weekday{time.Sunday},
		Holidays:            map[string]struct{}{},
		SpecialHours:        map[string]HoursOverride{},
		MinAdvanceHours:     2,
		MaxAdvanceDays:      90,
	}
}

func testAppointment(id int64, date string, startTime string, durationMinutes int, status domain.AppointmentStatus) *domain.Appointment {
	parsed, err := ParseDate(date)
	if err != nil {
		panic(err)
	}
	return &domain.Appointment{
		ID:              id,
		CustomerName:    "Test Customer",
		CustomerEmail:   "customer@example.com",
		Date:            parsed,
		StartTime:       types.TimeString(startTime),
		DurationMinutes: durationMinutes,
		Status:          status,
	}
}

// fixedNow фиксированный момент "сейчас" для детерминированных тестов:
// понедельник 2024-01-15, 10:00 локального времени
func fixedNow() time.Time {
	return time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local)
}
