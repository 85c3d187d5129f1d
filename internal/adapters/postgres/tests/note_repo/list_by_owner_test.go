package noterepo_test

import (
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notekeep/internal/adapters/postgres"
)

func TestNoteRepository_ListByOwner(t *testing.T) {
	ctx := testContext(t)

	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное получение списка заметок", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM notes").
			WithArgs(int64(7)).
			WillReturnRows(
				pgxmock.NewRows(noteColumns).
					AddRow(int64(2), int64(7), "Second", "newer", now, now).
					AddRow(int64(1), int64(7), "First", "older", now.Add(-time.Hour), now.Add(-time.Hour)),
			)

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.ListByOwner(ctx, 7)

		require.NoError(t, err)
		require.Len(t, notes, 2)
		assert.Equal(t, int64(2), notes[0].ID)
		assert.Equal(t, int64(1), notes[1].ID)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Пустой список для пользователя без заметок", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM notes").
			WithArgs(int64(8)).
			WillReturnRows(pgxmock.NewRows(noteColumns))

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.ListByOwner(ctx, 8)

		require.NoError(t, err)
		assert.NotNil(t, notes)
		assert.Empty(t, notes)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Ошибка БД при получении списка", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT .+ FROM notes").
			WithArgs(int64(7)).
			WillReturnError(errors.New("database connection error"))

		repo := postgres.NewNoteRepository(mock)
		notes, err := repo.ListByOwner(ctx, 7)

		assert.Nil(t, notes)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list notes")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
