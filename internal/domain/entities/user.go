// Package entities определяет доменные сущности сервиса.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidUsername = errors.New("username must be at least 3 characters of letters, digits or underscore")
	ErrUsernameTaken   = errors.New("username is already taken")
	ErrEmailTaken      = errors.New("email is already taken")
)

// User представляет основную сущность домена пользователя.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}
