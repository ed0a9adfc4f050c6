package check_availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/techydad05/nail-artist-website/internal/domain"
	"github.com/techydad05/nail-artist-website/internal/schedule"
)

// UseCase use case для проверки доступности конкретного слота
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

// Execute выполняет use case проверки доступности
//
// Результат проверки вне транзакции носит информационный характер:
// гарантию от гонки дает только сериализуемая транзакция при создании
// записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s, time=%s, exclude=%d", req.Date, req.StartTime, req.ExcludeID)

	if strings.TrimSpace(req.Date) == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	now := uc.timeProvider.Now()

	// Невалидная дата отсекается движком без похода в хранилище
	var existing []*domain.Appointment
	if parsed, err := schedule.ParseDate(req.Date); err == nil {
		filter := domain.AppointmentsFilter{
			StartDate: &parsed,
			EndDate:   &parsed,
		}

		existing, err = uc.appointmentRepo.ListWithFilter(ctx, filter)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get appointments: %v", err)
			return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
	}

	result := schedule.CheckSlot(req.Date, req.StartTime, uc.calendar, now, existing, req.ExcludeID)

	uc.logger.Info("CheckAvailability: date=%s, time=%s, available=%t, reason=%s",
		req.Date, req.StartTime, result.Available, result.Reason)

	return &Response{Result: result}, nil
}
