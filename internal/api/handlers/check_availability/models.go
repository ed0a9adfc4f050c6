package check_availability

import (
	checkAvailability "github.com/techydad05/nail-artist-website/internal/usecase/check_availability"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	ExcludeID int64  `json:"excludeId,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() *checkAvailability.Request {
	return &checkAvailability.Request{
		Date:      r.Date,
		StartTime: types.TimeString(r.StartTime),
		ExcludeID: r.ExcludeID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: resp.Result.Available,
		Reason:    string(resp.Result.Reason),
		Message:   resp.Result.Message,
	}
}
