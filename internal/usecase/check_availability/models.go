package check_availability

import (
	"github.com/techydad05/nail-artist-website/internal/schedule"
	"github.com/techydad05/nail-artist-website/pkg/types"
)

// Request модель запроса проверки доступности слота
type Request struct {
	Date      string           // Дата в формате YYYY-MM-DD
	StartTime types.TimeString // Время начала слота
	ExcludeID int64            // ID записи, исключаемой из проверки (0 - без исключений)
}

// Response модель ответа проверки доступности
// Отказ - ожидаемый исход с причиной и сообщением, а не ошибка
type Response struct {
	Result schedule.AvailabilityResult
}
