package list_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/techydad05/nail-artist-website/internal/api/handlers"
	"github.com/techydad05/nail-artist-website/internal/domain"
	"github.com/techydad05/nail-artist-website/internal/service/appointments"
	"github.com/techydad05/nail-artist-website/internal/service/appointments/models"
)

const (
	msgInvalidDate   = "invalid date format, expected YYYY-MM-DD"
	msgInvalidStatus = "invalid status filter"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: date | startDate + endDate, status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListAppointmentsRequest{
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	// date - сокращение для startDate = endDate
	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if startStr := query.Get("startDate"); startStr != "" {
			start, err := time.Parse(domain.DateFormat, startStr)
			if err != nil {
				h.logger.Warn("GET /appointments - Invalid startDate: %v", err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			req.StartDate = &start
		}
		if endStr := query.Get("endDate"); endStr != "" {
			end, err := time.Parse(domain.DateFormat, endStr)
			if err != nil {
				h.logger.Warn("GET /appointments - Invalid endDate: %v", err)
				handlers.RespondBadRequest(w, msgInvalidDate)
				return
			}
			req.EndDate = &end
		}
	}

	if statusStr := query.Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
