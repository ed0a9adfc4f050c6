package domain

import (
	"time"

	"github.com/techydad05/nail-artist-website/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a salon appointment
type Appointment struct {
	ID              int64
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ServiceID       int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized service data for history
	ServiceName  string
	ServicePrice float64

	Notes           *string
	DesignReference *string // ссылка на дизайн из виртуального конструктора

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot
// (pending and confirmed appointments block the calendar)
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// DateString returns the appointment date as YYYY-MM-DD
func (a *Appointment) DateString() string {
	return a.Date.Format(DateFormat)
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли завершенные и отмененные записи
}
