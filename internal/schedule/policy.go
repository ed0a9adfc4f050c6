package schedule

import (
	"fmt"
	"time"
)

// IsBusinessDay возвращает true, если салон открыт в эту дату:
// день недели не выходной и дата не праздник
// Некорректная дата не является рабочим днем
func IsBusinessDay(date string, cal *Calendar) bool {
	parsed, err := ParseDate(date)
	if err != nil {
		return false
	}

	if cal.IsClosedWeekday(parsed.Weekday()) {
		return false
	}

	return !cal.IsHoliday(date)
}

// ValidateBookingDate проверяет, что на дату можно бронировать
//
// Дата трактуется как начало календарного дня в тайм-зоне now и
// сравнивается с моментом now + MinAdvanceHours. Проверка минимального
// времени до записи идет раньше общей проверки "дата в прошлом":
// она более специфична и дает более понятное сообщение для
// сегодняшних, но слишком близких запросов. Проверка прошлого
// оставлена как явная страховка
func ValidateBookingDate(date string, cal *Calendar, now time.Time) DateValidation {
	parsed, err := ParseDate(date)
	if err != nil {
		return DateValidation{Valid: false, Reason: ReasonInvalidDateFormat, Message: msgInvalidDateFormat}
	}

	y, m, d := parsed.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	minAdvance := now.Add(time.Duration(cal.MinAdvanceHours) * time.Hour)
	if dayStart.Before(minAdvance) {
		return DateValidation{
			Valid:   false,
			Reason:  ReasonTooSoon,
			Message: fmt.Sprintf("Appointments must be booked at least %d hours in advance", cal.MinAdvanceHours),
		}
	}

	if dayStart.Before(startOfDay(now)) {
		return DateValidation{Valid: false, Reason: ReasonInThePast, Message: msgInThePast}
	}

	maxAdvance := startOfDay(now).AddDate(0, 0, cal.MaxAdvanceDays)
	if dayStart.After(maxAdvance) {
		return DateValidation{
			Valid:   false,
			Reason:  ReasonTooFarAhead,
			Message: fmt.Sprintf("Cannot book more than %d days in advance", cal.MaxAdvanceDays),
		}
	}

	return DateValidation{Valid: true}
}

// startOfDay обнуляет время, оставляя только календарный день
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
