package domain

// Default calendar values
const (
	DefaultSlotDurationMinutes = 60
	DefaultBufferMinutes       = 15
	DefaultMinAdvanceHours     = 2
	DefaultMaxAdvanceDays      = 90
)

// Business validation constants
const (
	MinServiceDurationMinutes = 15
	MaxServiceDurationMinutes = 240
	MaxNotesLength            = 500
	MaxCancellationReasonLen  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы записей, занимающих слот в календаре
// Используются при подсчете доступных слотов и поиске конфликтов
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы записей, не занимающих слот
var InactiveStatuses = []AppointmentStatus{
	StatusCompleted,
	StatusCancelled,
}

// ValidStatuses все допустимые статусы записи
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

// IsValidStatus возвращает true, если строка является допустимым статусом
func IsValidStatus(s string) bool {
	for _, status := range ValidStatuses {
		if string(status) == s {
			return true
		}
	}
	return false
}
