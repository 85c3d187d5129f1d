package repositories

import (
	"context"

	"notekeep/internal/domain/entities"
)

// NoteRepository определяет операции над заметками, всегда ограниченные
// владельцем.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	// GetByID возвращает (nil, nil), если заметка не существует или
	// принадлежит другому пользователю.
	GetByID(ctx context.Context, noteID, ownerID int64) (*entities.Note, error)

	// ListByOwner возвращает заметки владельца, новые первыми.
	ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Note, error)

	// Update выполняет частичное обновление; nil-поля сохраняют прежнее
	// значение, updated_at обновляется при любом успешном вызове.
	Update(ctx context.Context, noteID, ownerID int64, title, content *string) (*entities.Note, error)

	Delete(ctx context.Context, noteID, ownerID int64) error
}
