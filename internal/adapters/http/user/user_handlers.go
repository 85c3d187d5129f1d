// Package user содержит HTTP обработчики профиля пользователя.
package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/adapters/http/dto"
	"notekeep/internal/adapters/http/middleware"
	"notekeep/internal/domain/entities"
	"notekeep/internal/ports/api"
	"notekeep/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerGetProfile    = "user handler: get profile"
	LogHandlerUpdateProfile = "user handler: update profile"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
	ErrorInternal             = "internal server error"
	ErrorUnauthenticated      = "unauthenticated"
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

// Handler содержит HTTP обработчики профиля.
type Handler struct {
	userUseCase api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика профиля.
func NewHandler(userUseCase api.UserUseCase) *Handler {
	return &Handler{
		userUseCase: userUseCase,
	}
}

// GetProfile возвращает профиль аутентифицированного пользователя.
func (h *Handler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetProfile)

	current, ok := middleware.UserFromContext(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthenticated)
	}

	profile, err := h.userUseCase.GetProfile(requestCtx, current.ID)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, entities.ErrUserNotFound.Error())
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternal)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserProfileResponse(profile)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateProfile изменяет почту и/или полное имя пользователя.
// Отсутствующее в запросе поле остается без изменений.
func (h *Handler) UpdateProfile(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateProfile)

	current, ok := middleware.UserFromContext(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthenticated)
	}

	var req dto.UpdateProfileRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	profile, err := h.userUseCase.UpdateProfile(requestCtx, current.ID, req.Email, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidEmail):
			return sendErrorResponse(ctx, http.StatusBadRequest, entities.ErrInvalidEmail.Error())
		case errors.Is(err, entities.ErrEmailTaken):
			return sendErrorResponse(ctx, http.StatusConflict, entities.ErrEmailTaken.Error())
		case errors.Is(err, entities.ErrUserNotFound):
			return sendErrorResponse(ctx, http.StatusNotFound, entities.ErrUserNotFound.Error())
		default:
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternal)
		}
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewUserProfileResponse(profile)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
