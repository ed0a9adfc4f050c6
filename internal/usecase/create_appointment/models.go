package create_appointment

import (
	"time"

	"github.com/techydad05/nail-artist-website/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerName    string           // Имя клиента
	CustomerEmail   string           // Email для подтверждения
	CustomerPhone   string           // Телефон (опционально)
	ServiceID       int64            // ID услуги из каталога
	Date            time.Time        // Дата записи (без времени)
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	Notes           *string          // Пожелания клиента (опционально)
	DesignReference *string          // Ссылка на выбранный дизайн (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	CustomerName    string           // Имя клиента
	CustomerEmail   string           // Email клиента
	CustomerPhone   string           // Телефон клиента
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность услуги в минутах
	Status          string           // Статус записи

	// Денормализованные данные услуги
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги

	Notes           *string // Пожелания клиента
	DesignReference *string // Ссылка на дизайн

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
