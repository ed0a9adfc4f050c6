package get_available_slots

import (
	getAvailableSlots "github.com/techydad05/nail-artist-website/internal/usecase/get_available_slots"
)

// DayAvailabilityResponse HTTP response model
type DayAvailabilityResponse struct {
	Date        string   `json:"date"`
	BusinessDay bool     `json:"businessDay"`
	Slots       []string `json:"slots"`
	TotalSlots  int      `json:"totalSlots"`
	BookedCount int      `json:"bookedCount"`
	Open        string   `json:"open,omitempty"`
	Close       string   `json:"close,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	Message     string   `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *DayAvailabilityResponse {
	day := resp.Day

	slots := make([]string, 0, len(day.Slots))
	for _, s := range day.Slots {
		slots = append(slots, s.String())
	}

	return &DayAvailabilityResponse{
		Date:        day.Date,
		BusinessDay: day.BusinessDay,
		Slots:       slots,
		TotalSlots:  day.TotalSlots,
		BookedCount: day.BookedCount,
		Open:        day.Open.String(),
		Close:       day.Close.String(),
		Reason:      string(day.Reason),
		Message:     day.Message,
	}
}
