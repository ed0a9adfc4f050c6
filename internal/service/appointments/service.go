package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/techydad05/nail-artist-website/internal/domain"
	apptRepo "github.com/techydad05/nail-artist-website/internal/infra/storage/appointment"
	"github.com/techydad05/nail-artist-website/internal/notify"
	"github.com/techydad05/nail-artist-website/internal/schedule"
	"github.com/techydad05/nail-artist-website/internal/service/appointments/models"
)

// Service сервис для работы с записями клиентов
type Service struct {
	appointmentRepo AppointmentRepository
	emailSender     EmailSender
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	emailSender EmailSender,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		emailSender:     emailSender,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи с гибкой фильтрацией
//
// Примеры использования:
// - Все активные записи: List(ctx, &ListAppointmentsRequest{})
// - Записи на дату: StartDate и EndDate указывают на одну дату
// - Только завершенные: указать Status = "completed"
// - Включая отмененные: IncludeInactive = true
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments, includeInactive=%t", req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись и уведомляет клиента письмом
// Отменить можно только активную запись: завершенные и уже отмененные
// остаются как есть
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)

	// Уведомление не критично: ошибка отправки не откатывает отмену
	if err := s.emailSender.Send(ctx, notify.CancellationEmail(appt, req.CancellationReason)); err != nil {
		s.logger.Error("Cancel: failed to send cancellation email for id=%d: %v", id, err)
	}

	return nil
}

// UpdateStatus обновляет статус записи с проверкой допустимости перехода
//
// Завершенную запись нельзя вернуть в pending или confirmed, отмененную
// нельзя оживить вовсе - история должна оставаться историей
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !schedule.CanTransition(appt.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for appointment id=%d",
			appt.Status, newStatus, id)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, newStatus)
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return nil
}

// Stats считает агрегированную статистику по записям за период
// Агрегация выполняется в памяти: объемы записей одного салона этого
// позволяют
func (s *Service) Stats(ctx context.Context, req *models.StatsRequest) (*models.StatsResponse, error) {
	s.logger.Info("Stats: computing appointment stats")

	filter := domain.AppointmentsFilter{
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IncludeInactive: true,
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	resp := &models.StatsResponse{
		Total:     len(appointments),
		ByStatus:  make(map[string]int),
		ByDate:    make(map[string]int),
		ByService: make(map[string]int),
	}

	for _, appt := range appointments {
		resp.ByStatus[string(appt.Status)]++
		resp.ByDate[appt.DateString()]++
		resp.ByService[appt.ServiceName]++
	}

	s.logger.Info("Stats: computed stats for %d appointments", resp.Total)
	return resp, nil
}
