// Package notes содержит HTTP обработчики заметок.
package notes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

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
	LogHandlerCreateNote = "notes handler: create note"
	LogHandlerGetNote    = "notes handler: get note"
	LogHandlerListNotes  = "notes handler: list notes"
	LogHandlerUpdateNote = "notes handler: update note"
	LogHandlerDeleteNote = "notes handler: delete note"

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

// Handler содержит HTTP обработчики заметок.
type Handler struct {
	noteUseCase api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase api.NoteUseCase) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
	}
}

// noteIDFromParams извлекает идентификатор заметки из пути. Нечисловой
// идентификатор неотличим от несуществующего.
func noteIDFromParams(ctx fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("note_id"), 10, 64)
	if err != nil {
		return 0, entities.ErrNoteNotFound
	}
	return id, nil
}

// CreateNote создает заметку для аутентифицированного пользователя.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreateNote)

	current, ok := middleware.UserFromContext(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthenticated)
	}

	var req dto.CreateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	note, err := h.noteUseCase.CreateNote(requestCtx, current.ID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, entities.ErrEmptyTitle) {
			return sendErrorResponse(ctx, http.StatusBadRequest, entities.ErrEmptyTitle.Error())
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternal)
	}

	if err := ctx.Status(http.StatusCreated).JSON(dto.NewNoteResponse(note)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetNote возвращает заметку по идентификатору. Чужие заметки
// неотличимы от несуществующих.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetNote)

	current, ok := middleware.UserFromContext(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthenticated)
	}

	noteID, err := noteIDFromParams(ctx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusNotFound, entities.ErrNoteNotFound.Error())
	}

	note, err := h.noteUseCase.GetNote(requestCtx, current.ID, noteID)
	if err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, entities.ErrNoteNotFound.Error())
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternal)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewNoteResponse(note)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// ListNotes возвращает все заметки пользователя, новые первыми.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerListNotes)

	current, ok := middleware.UserFromContext(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthenticated)
	}

	list, err := h.noteUseCase.ListNotes(requestCtx, current.ID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternal)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewNoteListResponse(list)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// UpdateNote изменяет заголовок и/или содержимое заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdateNote)

	current, ok := middleware.UserFromContext(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthenticated)
	}

	noteID, err := noteIDFromParams(ctx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusNotFound, entities.ErrNoteNotFound.Error())
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	note, err := h.noteUseCase.UpdateNote(requestCtx, current.ID, noteID, req.Title, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrEmptyTitle):
			return sendErrorResponse(ctx, http.StatusBadRequest, entities.ErrEmptyTitle.Error())
		case errors.Is(err, entities.ErrNoteNotFound):
			return sendErrorResponse(ctx, http.StatusNotFound, entities.ErrNoteNotFound.Error())
		default:
			log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
			return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternal)
		}
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.NewNoteResponse(note)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// DeleteNote удаляет заметку пользователя.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDeleteNote)

	current, ok := middleware.UserFromContext(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, ErrorUnauthenticated)
	}

	noteID, err := noteIDFromParams(ctx)
	if err != nil {
		return sendErrorResponse(ctx, http.StatusNotFound, entities.ErrNoteNotFound.Error())
	}

	if err := h.noteUseCase.DeleteNote(requestCtx, current.ID, noteID); err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return sendErrorResponse(ctx, http.StatusNotFound, entities.ErrNoteNotFound.Error())
		}
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusInternalServerError, ErrorInternal)
	}

	return ctx.SendStatus(http.StatusNoContent)
}
