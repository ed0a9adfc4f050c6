package schedule

import "github.com/techydad05/nail-artist-website/internal/domain"

// CanTransition возвращает true, если смена статуса записи допустима
//
// Завершенную запись нельзя вернуть в pending или confirmed;
// отмененная запись терминальна - из нее нет переходов (кроме no-op).
// Остальные переходы, включая повтор того же статуса, разрешены.
// Это чистый предикат: отклонение недопустимого перехода с ошибкой -
// ответственность вызывающей стороны
func CanTransition(current, next domain.AppointmentStatus) bool {
	switch current {
	case domain.StatusCompleted:
		return next != domain.StatusPending && next != domain.StatusConfirmed
	case domain.StatusCancelled:
		return next == domain.StatusCancelled
	default:
		return true
	}
}
