package dto

import (
	"time"

	"notekeep/internal/domain/entities"
)

// CreateNoteRequest содержит данные новой заметки.
type CreateNoteRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// UpdateNoteRequest содержит частичное обновление заметки:
// отсутствующие поля сохраняют прежнее значение.
type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// NoteResponse содержит поля заметки, возвращаемые клиенту.
type NoteResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNoteResponse строит ответ из доменной сущности.
func NewNoteResponse(note *entities.Note) *NoteResponse {
	return &NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// NewNoteListResponse строит список ответов из доменных сущностей.
func NewNoteListResponse(notes []*entities.Note) []*NoteResponse {
	responses := make([]*NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, NewNoteResponse(note))
	}
	return responses
}
