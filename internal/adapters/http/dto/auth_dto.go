// Package dto содержит объекты передачи данных HTTP слоя.
package dto

// SignupRequest содержит данные для регистрации пользователя.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name"`
}

// SignupResponse подтверждает создание пользователя.
type SignupResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// LoginRequest содержит учетные данные; передается формой.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// TokenResponse содержит выпущенный токен доступа.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
