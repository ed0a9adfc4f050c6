package create_appointment

import (
	"fmt"
	"strings"

	"github.com/techydad05/nail-artist-website/internal/schedule"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}

	if !strings.Contains(req.CustomerEmail, "@") {
		return fmt.Errorf("%w: customerEmail is not a valid email address", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// availabilityError конвертирует отказ проверки доступности в ошибку usecase
func availabilityError(res schedule.AvailabilityResult) error {
	switch res.Reason {
	case schedule.ReasonInvalidDateFormat:
		return ErrInvalidDate
	case schedule.ReasonInThePast:
		return ErrDateInPast
	case schedule.ReasonTooSoon:
		return fmt.Errorf("%w: %s", ErrTooLateToBook, res.Message)
	case schedule.ReasonTooFarAhead:
		return fmt.Errorf("%w: %s", ErrDateTooFarInFuture, res.Message)
	case schedule.ReasonClosedDay:
		return ErrSalonClosed
	case schedule.ReasonOutsideHours:
		return ErrOutsideHours
	case schedule.ReasonSlotTaken:
		return ErrSlotNotAvailable
	default:
		return fmt.Errorf("%w: unexpected availability reason %q", ErrInternal, res.Reason)
	}
}
