package noterepo_test

import (
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/adapters/postgres"
	"notekeep/internal/domain/entities"
)

func TestNoteRepository_Delete(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешное удаление заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM notes").
			WithArgs(int64(1), int64(7)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := postgres.NewNoteRepository(mock)
		err = repo.Delete(ctx, 1, 7)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Удаление чужой или несуществующей заметки", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM notes").
			WithArgs(int64(1), int64(8)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := postgres.NewNoteRepository(mock)
		err = repo.Delete(ctx, 1, 8)

		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка БД при удалении", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("DELETE FROM notes").
			WithArgs(int64(1), int64(7)).
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewNoteRepository(mock)
		err = repo.Delete(ctx, 1, 7)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete note")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
