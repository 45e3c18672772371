package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные
для ошибок бизнес-логики розыгрышей.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует".
// Дубликат идентификатора при создании считается конфликтом запроса (400).
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusBadRequest)
}

// ErrConflict - общая фабрика для конфликтов (400)
func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusBadRequest)
}

// ErrInvalidStatus - фабрика для недопустимых переходов статуса (400)
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrDatabase - фабрика для ошибок хранилища (500, детали не раскрываются клиенту)
func ErrDatabase(err error, domain string) *AppError {
	return Wrap(err, CodeDatabaseError, domain, "Internal server error", http.StatusInternalServerError)
}
