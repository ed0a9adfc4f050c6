package schedule

import (
	"github.com/techydad05/nail-artist-website/internal/domain"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

// Reason машиночитаемый тег причины отказа
// Все отказы движка - ожидаемые исходы, а не ошибки: они возвращаются
// как данные и мапятся на HTTP статусы на уровне handlers
type Reason string

const (
	ReasonInvalidDateFormat  Reason = "invalid_date_format"
	ReasonTooSoon            Reason = "too_soon"
	ReasonInThePast          Reason = "in_the_past"
	ReasonTooFarAhead        Reason = "too_far_ahead"
	ReasonClosedDay          Reason = "closed_day"
	ReasonOutsideHours       Reason = "outside_hours"
	ReasonSlotTaken          Reason = "slot_taken"
	ReasonSchedulingConflict Reason = "scheduling_conflict"
	ReasonInvalidTransition  Reason = "invalid_transition"
)

// Человекочитаемые сообщения для клиента
const (
	msgInvalidDateFormat = "Invalid date format"
	msgInThePast         = "Cannot book appointments in the past"
	msgClosedDay         = "Business is closed on this day"
	msgOutsideHours      = "Time is outside business hours"
	msgSlotTaken         = "Time slot is already booked"
)

// DateValidation результат проверки даты бронирования
type DateValidation struct {
	Valid   bool
	Reason  Reason
	Message string
}

// AvailabilityResult результат проверки доступности конкретного слота
type AvailabilityResult struct {
	Available bool
	Reason    Reason
	Message   string
}

// DayAvailability доступность слотов на день
// Закрытый или невалидный день - это пустой список слотов с пояснением,
// а не ошибка: так различаются "нет слотов, потому что закрыто"
// и "нет слотов, потому что всё занято"
type DayAvailability struct {
	Date        string
	BusinessDay bool
	Slots       []types.TimeString
	TotalSlots  int
	BookedCount int
	Open        types.TimeString
	Close       types.TimeString
	Reason      Reason
	Message     string
}

// ConflictResult результат поиска пересечений с существующими записями
type ConflictResult struct {
	HasConflict bool
	Conflicts   []*domain.Appointment
}

func unavailable(reason Reason, message string) AvailabilityResult {
	return AvailabilityResult{Available: false, Reason: reason, Message: message}
}
