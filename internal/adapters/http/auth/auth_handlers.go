// Package auth содержит HTTP обработчики регистрации и входа.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/adapters/http/dto"
	"notekeep/internal/domain/entities"
	"notekeep/internal/domain/services"
	"notekeep/internal/ports/api"
	"notekeep/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerSignup = "auth handler: signup"
	LogHandlerLogin  = "auth handler: login"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorInternal             = "internal server error"

	MsgUserCreated  = "user created"
	TokenTypeBearer = "bearer"
)

// Вспомогательная функция для отправки ошибки клиенту.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// Signup обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Signup(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSignup)

	var req dto.SignupRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "username, email and password are required")
	}

	user, err := h.authUseCase.Signup(requestCtx, req.Username, req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrUsernameTaken), errors.Is(err, entities.ErrEmailTaken):
			return sendErrorResponse(ctx, http.StatusConflict, unwrapMessage(err))
		case errors.Is(err, entities.ErrInvalidUsername),
			errors.Is(err, entities.ErrInvalidEmail),
			errors.Is(err, services.ErrInvalidPassword):
			return sendErrorResponse(ctx, http.StatusBadRequest, unwrapMessage(err))
		default:
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternal)
		}
	}

	if err := ctx.Status(http.StatusCreated).JSON(&dto.SignupResponse{
		Message:  MsgUserCreated,
		Username: user.Username,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя. Учетные данные
// передаются формой; причина отказа в ответе не детализируется.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().Form(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Username == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, "username and password are required")
	}

	token, _, err := h.authUseCase.Login(requestCtx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return sendErrorResponse(ctx, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternal)
	}

	if err := ctx.Status(http.StatusOK).JSON(&dto.TokenResponse{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// unwrapMessage возвращает сообщение доменной ошибки без внутренних
// контекстов обертывания.
func unwrapMessage(err error) string {
	for _, sentinel := range []error{
		entities.ErrUsernameTaken,
		entities.ErrEmailTaken,
		entities.ErrInvalidUsername,
		entities.ErrInvalidEmail,
		services.ErrInvalidPassword,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return ErrorInvalidRequest
}
