package get_available_slots

import (
	"github.com/techydad05/nail-artist-website/internal/schedule"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date string // Дата в формате YYYY-MM-DD
}

// Response модель ответа с доступностью слотов на день
// Повторяет schedule.DayAvailability: закрытый или невалидный день -
// это пустой список слотов с пояснением, а не ошибка
type Response struct {
	Day schedule.DayAvailability
}
