package api

import (
	"context"

	"notekeep/internal/domain/entities"
)

// UserUseCase определяет операции над профилем аутентифицированного
// пользователя.
type UserUseCase interface {
	GetProfile(ctx context.Context, userID int64) (*entities.User, error)

	// UpdateProfile выполняет частичное обновление: nil-поля сохраняют
	// прежнее значение.
	UpdateProfile(ctx context.Context, userID int64, email, fullName *string) (*entities.User, error)
}
