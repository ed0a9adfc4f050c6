package check_availability

import (
	"errors"
	"net/http"

	"github.com/techydad05/nail-artist-website/internal/api/handlers"
	checkAvailability "github.com/techydad05/nail-artist-website/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "date and startTime are required, startTime format HH:MM"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability/check - Failed to check availability: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /availability/check - Availability checked: date=%s, time=%s, available=%t",
		req.Date, req.StartTime, response.Available)
	handlers.RespondJSON(w, http.StatusOK, response)
}
