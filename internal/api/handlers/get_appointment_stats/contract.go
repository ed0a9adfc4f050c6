package get_appointment_stats

import (
	"context"

	"github.com/techydad05/nail-artist-website/internal/service/appointments/models"
)

type AppointmentService interface {
	Stats(ctx context.Context, req *models.StatsRequest) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
