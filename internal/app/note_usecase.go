package app

import (
	"context"
	"fmt"
	"strings"

	"notekeep/internal/domain/entities"
	"notekeep/internal/ports/api"
	"notekeep/internal/ports/repositories"
)

// NoteUseCaseImpl реализует бизнес-логику работы с заметками.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{
		noteRepo: noteRepo,
	}
}

// CreateNote создает новую заметку для пользователя. Заголовок, пустой
// после обрезки пробелов, отклоняется.
func (uc *NoteUseCaseImpl) CreateNote(ctx context.Context, ownerID int64, title, content string) (*entities.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, entities.ErrEmptyTitle
	}

	note := &entities.Note{
		OwnerID: ownerID,
		Title:   title,
		Content: content,
	}

	created, err := uc.noteRepo.Create(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return created, nil
}

// GetNote возвращает заметку по ID. Чужая заметка неотличима от
// несуществующей.
func (uc *NoteUseCaseImpl) GetNote(ctx context.Context, ownerID, noteID int64) (*entities.Note, error) {
	note, err := uc.noteRepo.GetByID(ctx, noteID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	if note == nil {
		return nil, entities.ErrNoteNotFound
	}

	return note, nil
}

// ListNotes возвращает все заметки пользователя, новые первыми.
func (uc *NoteUseCaseImpl) ListNotes(ctx context.Context, ownerID int64) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

// UpdateNote выполняет частичное обновление заметки: nil-поля сохраняют
// прежнее значение.
func (uc *NoteUseCaseImpl) UpdateNote(ctx context.Context, ownerID, noteID int64, title, content *string) (*entities.Note, error) {
	if title != nil && strings.TrimSpace(*title) == "" {
		return nil, entities.ErrEmptyTitle
	}

	updated, err := uc.noteRepo.Update(ctx, noteID, ownerID, title, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return updated, nil
}

// DeleteNote удаляет заметку без возможности восстановления.
func (uc *NoteUseCaseImpl) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	if err := uc.noteRepo.Delete(ctx, noteID, ownerID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return nil
}
