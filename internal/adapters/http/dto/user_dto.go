package dto

import (
	"time"

	"notekeep/internal/domain/entities"
)

// UserProfileResponse содержит публичные поля профиля пользователя.
// Хэш пароля наружу не выдается.
type UserProfileResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateProfileRequest содержит частичное обновление профиля:
// отсутствующие поля сохраняют прежнее значение.
type UpdateProfileRequest struct {
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
}

// NewUserProfileResponse строит ответ из доменной сущности.
func NewUserProfileResponse(user *entities.User) *UserProfileResponse {
	return &UserProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}
