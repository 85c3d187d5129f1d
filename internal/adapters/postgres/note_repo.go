package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"notekeep/internal/domain/entities"
	"notekeep/internal/ports/repositories"
	"notekeep/pkg/logger"
)

// NoteRepository реализует интерфейс repositories.NoteRepository.
// Каждый запрос фильтруется по owner_id: чужая заметка неотличима
// от несуществующей.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку в БД.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.Int64("ownerID", note.OwnerID))

	var created entities.Note
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (owner_id, title, content)
         VALUES ($1, $2, $3)
         RETURNING id, owner_id, title, content, created_at, updated_at`,
		note.OwnerID, note.Title, note.Content,
	).Scan(&created.ID, &created.OwnerID, &created.Title, &created.Content, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.Int64("noteID", created.ID))
	return &created, nil
}

// GetByID получает заметку по ID и ID владельца.
func (r *NoteRepository) GetByID(ctx context.Context, noteID, ownerID int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))
	log.Debug(ctx, "getting note", zap.Int64("noteID", noteID), zap.Int64("ownerID", ownerID))

	var note entities.Note
	err := r.pool.QueryRow(ctx,
		`SELECT id, owner_id, title, content, created_at, updated_at
         FROM notes
         WHERE id = $1 AND owner_id = $2`,
		noteID, ownerID,
	).Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int64("noteID", noteID))
			return nil, nil
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

// ListByOwner получает все заметки владельца, новые первыми.
func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByOwner"))
	log.Debug(ctx, "listing notes", zap.Int64("ownerID", ownerID))

	rows, err := r.pool.Query(ctx,
		`SELECT id, owner_id, title, content, created_at, updated_at
         FROM notes
         WHERE owner_id = $1
         ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Update выполняет частичное обновление заметки одним атомарным запросом.
// updated_at обновляется при любом успешном вызове, даже если новые
// значения совпадают со старыми.
func (r *NoteRepository) Update(ctx context.Context, noteID, ownerID int64, title, content *string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.Int64("noteID", noteID))

	var updated entities.Note
	err := r.pool.QueryRow(ctx,
		`UPDATE notes
         SET title = COALESCE($3, title), content = COALESCE($4, content), updated_at = now()
         WHERE id = $1 AND owner_id = $2
         RETURNING id, owner_id, title, content, created_at, updated_at`,
		noteID, ownerID, title, content,
	).Scan(&updated.ID, &updated.OwnerID, &updated.Title, &updated.Content, &updated.CreatedAt, &updated.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned by user")
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &updated, nil
}

// Delete удаляет заметку без возможности восстановления.
func (r *NoteRepository) Delete(ctx context.Context, noteID, ownerID int64) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.Int64("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND owner_id = $2`,
		noteID, ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return entities.ErrNoteNotFound
	}

	return nil
}
