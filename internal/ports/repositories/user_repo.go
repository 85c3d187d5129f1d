// Package repositories определяет интерфейсы репозиториев.
package repositories

import (
	"context"

	"notekeep/internal/domain/entities"
)

// UserRepository определяет операции хранения учетных данных пользователей.
type UserRepository interface {
	// Create вставляет нового пользователя. Нарушение уникальности
	// username/email возвращается как entities.ErrUsernameTaken или
	// entities.ErrEmailTaken.
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByUsername(ctx context.Context, username string) (*entities.User, error)

	// UpdateProfile выполняет частичное обновление профиля: nil-поля
	// сохраняют прежнее значение.
	UpdateProfile(ctx context.Context, id int64, email, fullName *string) (*entities.User, error)
}
