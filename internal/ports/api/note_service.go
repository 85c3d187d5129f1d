package api

import (
	"context"

	"notekeep/internal/domain/entities"
)

// NoteUseCase определяет CRUD операции над заметками. Все операции
// получают идентификатор уже аутентифицированного владельца.
type NoteUseCase interface {
	CreateNote(ctx context.Context, ownerID int64, title, content string) (*entities.Note, error)

	GetNote(ctx context.Context, ownerID, noteID int64) (*entities.Note, error)

	ListNotes(ctx context.Context, ownerID int64) ([]*entities.Note, error)

	UpdateNote(ctx context.Context, ownerID, noteID int64, title, content *string) (*entities.Note, error)

	DeleteNote(ctx context.Context, ownerID, noteID int64) error
}
