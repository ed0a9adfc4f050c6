package get_appointment_stats

import (
	"net/http"
	"time"

	"github.com/techydad05/nail-artist-website/internal/api/handlers"
	"github.com/techydad05/nail-artist-website/internal/domain"
	"github.com/techydad05/nail-artist-website/internal/service/appointments/models"
)

const (
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
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

// Handle GET /api/v1/appointments/stats
// Query params: startDate, endDate (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.StatsRequest{}

	if startStr := query.Get("startDate"); startStr != "" {
		start, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			h.logger.Warn("GET /appointments/stats - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &start
	}
	if endStr := query.Get("endDate"); endStr != "" {
		end, err := time.Parse(domain.DateFormat, endStr)
		if err != nil {
			h.logger.Warn("GET /appointments/stats - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &end
	}

	result, err := h.service.Stats(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /appointments/stats - Failed to compute stats: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/stats - Stats computed successfully: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
