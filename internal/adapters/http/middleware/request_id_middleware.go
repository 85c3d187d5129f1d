package middleware

import (
	"github.com/gofiber/fiber/v3"

	"notekeep/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// requestIDContextKey - ключ Locals для идентификатора запроса.
const requestIDContextKey = "requestID"

// NewRequestIDMiddleware присваивает каждому запросу идентификатор.
// Идентификатор из входящего заголовка сохраняется, иначе генерируется
// новый.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := ctx.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}

		ctx.Locals(requestIDContextKey, requestID)
		ctx.Set(HeaderRequestID, requestID)

		return ctx.Next()
	}
}

// RequestIDFromContext возвращает идентификатор текущего запроса.
func RequestIDFromContext(ctx fiber.Ctx) (string, bool) {
	id, ok := ctx.Locals(requestIDContextKey).(string)
	return id, ok
}
