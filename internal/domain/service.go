package domain

import "time"

// Service represents a salon service from the catalog
// Appointment duration and price are taken from the selected service
type Service struct {
	ID              int64
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Category        string
	IsActive        bool
	SortOrder       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
