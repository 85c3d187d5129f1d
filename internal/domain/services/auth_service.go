// Package services определяет доменные типы и ошибки слоя аутентификации.
package services

import (
	"errors"
)

// Ошибки домена аутентификации. Неизвестное имя пользователя и неверный
// пароль намеренно сведены к одной ошибке, чтобы ответ не позволял
// перечислять учетные записи.
var (
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrTokenGenerationFailed = errors.New("failed to generate authentication token")
)
