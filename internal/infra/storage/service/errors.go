package service

import "errors"

var (
	// ErrServiceNotFound услуга не найдена
	ErrServiceNotFound = errors.New("service.repository: service not found")
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("service.repository: failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("service.repository: failed to execute query")
	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("service.repository: failed to scan row")
)
