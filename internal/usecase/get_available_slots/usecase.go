package get_available_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/techydad05/nail-artist-website/internal/domain"
	"github.com/techydad05/nail-artist-website/internal/schedule"
)

// UseCase use case для получения доступных слотов на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	calendar        *schedule.Calendar
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(appointmentRepo AppointmentRepository, calendar *schedule.Calendar, logger Logger) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		calendar:        calendar,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date)

	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// Невалидная дата отсекается движком без похода в хранилище
	parsed, err := schedule.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q", req.Date)
		day := schedule.ListAvailableSlots(req.Date, uc.calendar, now, nil)
		return &Response{Day: day}, nil
	}

	filter := domain.AppointmentsFilter{
		StartDate: &parsed,
		EndDate:   &parsed,
	}

	existing, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	day := schedule.ListAvailableSlots(req.Date, uc.calendar, now, existing)

	uc.logger.Info("GetAvailableSlots: date=%s, available=%d, booked=%d",
		req.Date, len(day.Slots), day.BookedCount)

	return &Response{Day: day}, nil
}
