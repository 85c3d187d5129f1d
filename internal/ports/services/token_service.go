package services

import (
	"context"
	"time"
)

// TokenService определяет интерфейс для операций с токенами доступа.
type TokenService interface {
	// Generate выпускает подписанный токен с subject = username.
	Generate(ctx context.Context, username string) (string, time.Time, error)

	// Validate проверяет подпись и срок действия токена и возвращает
	// subject (имя пользователя).
	Validate(ctx context.Context, token string) (string, error)
}
