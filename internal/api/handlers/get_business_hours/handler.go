package get_business_hours

import (
	"net/http"

	"github.com/techydad05/nail-artist-website/internal/api/handlers"
	"github.com/techydad05/nail-artist-website/internal/schedule"
)

type Handler struct {
	calendar *schedule.Calendar
	logger   Logger
}

func NewHandler(calendar *schedule.Calendar, logger Logger) *Handler {
	return &Handler{
		calendar: calendar,
		logger:   logger,
	}
}

// Handle GET /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /business-hours - Business hours retrieved")
	handlers.RespondJSON(w, http.StatusOK, FromCalendar(h.calendar))
}
