package http

import (
	"github.com/gofiber/fiber/v3"
)

// HealthHandler отвечает на проверку работоспособности сервиса.
func HealthHandler(ctx fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
	})
}
