package create_appointment

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/techydad05/nail-artist-website/internal/api/handlers"
	"github.com/techydad05/nail-artist-website/internal/schedule"
	createAppointment "github.com/techydad05/nail-artist-website/internal/usecase/create_appointment"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "Invalid date format"
	msgInvalidTime        = "invalid start time format, expected HH:MM"
	msgInvalidInput       = "invalid input data"
	msgServiceNotFound    = "service not found"
	msgDateInPast         = "Cannot book appointments in the past"
	msgSalonClosed        = "Business is closed on this day"
	msgOutsideHours       = "Time is outside business hours"
	msgSlotTaken          = "Time slot is already booked"
	msgConflict           = "Selected time conflicts with another appointment"
)

type Handler struct {
	useCase  CreateAppointmentUseCase
	calendar *schedule.Calendar
	logger   Logger
}

func NewHandler(useCase CreateAppointmentUseCase, calendar *schedule.Calendar, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		calendar: calendar,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			handlers.RespondBadRequest(w, fmt.Sprintf(
				"Appointments must be booked at least %d hours in advance", h.calendar.MinAdvanceHours))

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, fmt.Sprintf(
				"Cannot book more than %d days in advance", h.calendar.MaxAdvanceDays))

		case errors.Is(err, createAppointment.ErrSalonClosed):
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, createAppointment.ErrOutsideHours):
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot taken: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrSchedulingConflict):
			h.logger.Warn("POST /appointments - Scheduling conflict: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, date=%s, time=%s",
		result.ID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
