package entities

import (
	"errors"
	"time"
)

// Ошибки домена заметок.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrEmptyTitle   = errors.New("note title cannot be empty")
)

// Note представляет собой заметку пользователя.
type Note struct {
	ID        int64
	OwnerID   int64
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
