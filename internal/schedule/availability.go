package schedule

import (
	"time"

	"github.com/techydad05/nail-artist-website/internal/domain"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

// CheckSlot проверяет доступность конкретного слота (date, slotTime)
//
// Последовательность проверок: валидность даты бронирования, рабочий
// день, принадлежность времени к сетке слотов, занятость слота активной
// записью. excludeID исключает запись из проверки занятости - нужно
// для сценария "переношу свою же запись"; 0 означает без исключений
//
// existing - снимок записей, переданный вызывающей стороной; функция
// сама в хранилище не ходит
func CheckSlot(
	date string,
	slotTime types.TimeString,
	cal *Calendar,
	now time.Time,
	existing []*domain.Appointment,
	excludeID int64,
) AvailabilityResult {
	if v := ValidateBookingDate(date, cal, now); !v.Valid {
		return unavailable(v.Reason, v.Message)
	}

	if !IsBusinessDay(date, cal) {
		return unavailable(ReasonClosedDay, msgClosedDay)
	}

	if !containsSlot(GenerateSlots(date, cal), slotTime) {
		return unavailable(ReasonOutsideHours, msgOutsideHours)
	}

	for _, appt := range existing {
		if !appt.IsActive() {
			continue
		}
		if appt.DateString() != date || appt.StartTime != slotTime {
			continue
		}
		if excludeID != 0 && appt.ID == excludeID {
			continue
		}
		return unavailable(ReasonSlotTaken, msgSlotTaken)
	}

	return AvailabilityResult{Available: true}
}

// ListAvailableSlots вычисляет свободные слоты на дату
//
// Невалидная дата или закрытый день - это не ошибка, а пустой список
// слотов с заполненными Reason/Message и BusinessDay=false
func ListAvailableSlots(
	date string,
	cal *Calendar,
	now time.Time,
	existing []*domain.Appointment,
) DayAvailability {
	if v := ValidateBookingDate(date, cal, now); !v.Valid {
		return DayAvailability{
			Date:        date,
			BusinessDay: false,
			Slots:       []types.TimeString{},
			Reason:      v.Reason,
			Message:     v.Message,
		}
	}

	if !IsBusinessDay(date, cal) {
		return DayAvailability{
			Date:        date,
			BusinessDay: false,
			Slots:       []types.TimeString{},
			Reason:      ReasonClosedDay,
			Message:     msgClosedDay,
		}
	}

	allSlots := GenerateSlots(date, cal)

	bookedTimes := make(map[types.TimeString]struct{})
	bookedCount := 0
	for _, appt := range existing {
		if !appt.IsActive() || appt.DateString() != date {
			continue
		}
		bookedTimes[appt.StartTime] = struct{}{}
		bookedCount++
	}

	available := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if _, booked := bookedTimes[slot]; !booked {
			available = append(available, slot)
		}
	}

	open, close := cal.HoursFor(date)

	return DayAvailability{
		Date:        date,
		BusinessDay: true,
		Slots:       available,
		TotalSlots:  len(allSlots),
		BookedCount: bookedCount,
		Open:        open,
		Close:       close,
	}
}

func containsSlot(slots []types.TimeString, t types.TimeString) bool {
	for _, slot := range slots {
		if slot == t {
			return true
		}
	}
	return false
}
