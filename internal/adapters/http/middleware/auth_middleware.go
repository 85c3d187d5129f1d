// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notekeep/internal/domain/entities"
	"notekeep/internal/ports/repositories"
	"notekeep/internal/ports/services"
	"notekeep/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
	ErrorUserGone           = "token subject no longer exists"
	ErrorInternal           = "internal server error"
)

// userContextKey - ключ Locals для разрешенного пользователя.
const userContextKey = "authUser"

const bearerPrefix = "Bearer "

// NewAuthMiddleware создает промежуточное ПО аутентификации: извлекает
// bearer токен, проверяет его и разрешает subject в пользователя.
// Валидный токен без существующего пользователя трактуется как
// неаутентифицированный запрос, а не как ошибка сервера.
func NewAuthMiddleware(tokens services.TokenService, users repositories.UserRepository) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return unauthorized(ctx, ErrorNoAuthHeader)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return unauthorized(ctx, ErrorInvalidTokenFormat)
		}

		token := strings.TrimPrefix(authHeader, bearerPrefix)

		username, err := tokens.Validate(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return unauthorized(ctx, ErrorInvalidToken)
		}

		user, err := users.FindByUsername(requestCtx, username)
		if err != nil {
			if errors.Is(err, entities.ErrUserNotFound) {
				log.Debug(requestCtx, ErrorUserGone, zap.String("username", username))
				return unauthorized(ctx, ErrorInvalidToken)
			}
			log.Error(requestCtx, "failed to resolve token subject", zap.Error(err))
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": ErrorInternal,
			})
		}

		ctx.Locals(userContextKey, user)

		return ctx.Next()
	}
}

func unauthorized(ctx fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
	})
}

// UserFromContext возвращает пользователя, разрешенного промежуточным ПО
// аутентификации.
func UserFromContext(ctx fiber.Ctx) (*entities.User, bool) {
	user, ok := ctx.Locals(userContextKey).(*entities.User)
	return user, ok
}
