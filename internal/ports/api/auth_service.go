// Package api определяет интерфейсы сценариев использования.
package api

import (
	"context"
	"time"

	"notekeep/internal/domain/entities"
)

// AuthUseCase определяет публичные операции аутентификации.
type AuthUseCase interface {
	// Signup регистрирует нового пользователя и возвращает его профиль.
	Signup(ctx context.Context, username, email, password, fullName string) (*entities.User, error)

	// Login проверяет учетные данные и выпускает токен доступа.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
