// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"notekeep/internal/adapters/http/auth"
	"notekeep/internal/adapters/http/middleware"
	"notekeep/internal/adapters/http/notes"
	"notekeep/internal/adapters/http/user"
	"notekeep/internal/config"
	"notekeep/internal/ports/api"
	"notekeep/internal/ports/repositories"
	"notekeep/internal/ports/services"
)

// Router объединяет зависимости маршрутизации HTTP сервера.
type Router struct {
	AuthUseCase api.AuthUseCase
	UserUseCase api.UserUseCase
	NoteUseCase api.NoteUseCase
	Tokens      services.TokenService
	Users       repositories.UserRepository
	CORS        *config.CORSConfig
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, r Router) {
	authHandler := auth.NewHandler(r.AuthUseCase)
	userHandler := user.NewHandler(r.UserUseCase)
	notesHandler := notes.NewHandler(r.NoteUseCase)

	authGuard := middleware.NewAuthMiddleware(r.Tokens, r.Users)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: r.CORS.AllowOrigins,
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete},
		AllowHeaders: []string{fiber.HeaderAuthorization, fiber.HeaderContentType},
	}))

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Публичные маршруты.
	apiV1.Get("/health", HealthHandler)
	apiV1.Post("/signup", authHandler.Signup)
	apiV1.Post("/login", authHandler.Login)

	// Профиль (требует авторизации).
	apiV1.Get("/me", userHandler.GetProfile, authGuard)
	apiV1.Put("/me", userHandler.UpdateProfile, authGuard)

	// Маршруты заметок (требуют авторизации).
	notesRoutes := apiV1.Group("/notes")
	notesRoutes.Use(authGuard)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Get("/:note_id", notesHandler.GetNote)
	notesRoutes.Put("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
