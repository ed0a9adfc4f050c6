package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("create_appointment: invalid date format")

	// ErrDateInPast возвращается, когда дата записи уже прошла
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrTooLateToBook возвращается, когда запись нарушает минимальный срок предупреждения
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrSalonClosed возвращается, когда салон закрыт в указанную дату
	ErrSalonClosed = errors.New("create_appointment: salon is closed on this date")

	// ErrOutsideHours возвращается, когда время вне рабочей сетки слотов
	ErrOutsideHours = errors.New("create_appointment: time is outside business hours")

	// ErrSlotNotAvailable возвращается, когда выбранный слот уже занят
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrSchedulingConflict возвращается, когда услуга пересекается с соседней записью
	ErrSchedulingConflict = errors.New("create_appointment: scheduling conflict with existing appointment")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
