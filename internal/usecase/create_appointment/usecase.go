package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/techydad05/nail-artist-website/internal/domain"
	apptStorage "github.com/techydad05/nail-artist-website/internal/infra/storage/appointment"
	serviceStorage "github.com/techydad05/nail-artist-website/internal/infra/storage/service"
	"github.com/techydad05/nail-artist-website/internal/notify"
	"github.com/techydad05/nail-artist-website/internal/schedule"
)

// UseCase use case для создания записи клиента
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	calendar        *schedule.Calendar
	txManager       TransactionManager
	emailSender     EmailSender
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	calendar *schedule.Calendar,
	txManager TransactionManager,
	emailSender EmailSender,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		calendar:        calendar,
		txManager:       txManager,
		emailSender:     emailSender,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
//
// Проверка доступности слота и вставка выполняются в одной
// сериализуемой транзакции: выборка записей дня блокирует строки
// (FOR UPDATE), поэтому два параллельных бронирования одного слота
// не могут пройти проверку одновременно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: email=%s, service=%d, date=%s, time=%s",
		req.CustomerEmail, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу из каталога
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceStorage.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// Снятая с витрины услуга недоступна для новых записей
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	dateStr := req.Date.Format(domain.DateFormat)

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Выполняем проверку доступности и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем все активные записи на эту дату с блокировкой (FOR UPDATE)
		filter := domain.AppointmentsFilter{
			StartDate: &req.Date,
			EndDate:   &req.Date,
		}

		existing, err := uc.appointmentRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 4.2. Проверяем доступность слота (дата, рабочий день, сетка, занятость)
		res := schedule.CheckSlot(dateStr, req.StartTime, uc.calendar, now, existing, 0)
		if !res.Available {
			uc.logger.Warn("CreateAppointment: slot unavailable: reason=%s", res.Reason)
			return availabilityError(res)
		}

		// 4.3. Проверяем пересечения с учетом длительности услуги и буфера
		conflict := schedule.FindConflicts(dateStr, req.StartTime, service.DurationMinutes, uc.calendar, existing, 0)
		if conflict.HasConflict {
			uc.logger.Warn("CreateAppointment: %d conflicting appointment(s) for date=%s, time=%s",
				len(conflict.Conflicts), dateStr, req.StartTime)
			return fmt.Errorf("%w: %d overlapping appointment(s)", ErrSchedulingConflict, len(conflict.Conflicts))
		}

		// 4.4. Создаем запись с денормализацией данных услуги
		appt := &domain.Appointment{
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
			DesignReference: req.DesignReference,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Уникальный индекс поймал гонку, которую не увидела выборка
			if errors.Is(err, apptStorage.ErrSlotOccupied) {
				uc.logger.Warn("CreateAppointment: slot occupied on insert: date=%s, time=%s", dateStr, req.StartTime)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// 5. Отправляем подтверждение после коммита, ошибка отправки не
	// откатывает созданную запись
	if err := uc.emailSender.Send(ctx, notify.ConfirmationEmail(result)); err != nil {
		uc.logger.Error("CreateAppointment: failed to send confirmation email for id=%d: %v", result.ID, err)
	}

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		CustomerPhone:   result.CustomerPhone,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ServiceName:     result.ServiceName,
		ServicePrice:    result.ServicePrice,
		Notes:           result.Notes,
		DesignReference: result.DesignReference,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
