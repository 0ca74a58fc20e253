package service

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, duration_minutes, price FROM services ORDER BY name ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_minutes", "price"}).
			AddRow("svc-1", "Barba", 20, []byte("25.00")).
			AddRow("svc-2", "Corte", 30, []byte("35.50")))

	services, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "Barba", services[0].Name)
	assert.Equal(t, 20, services[0].DurationMinutes)
	assert.Equal(t, 35.5, services[1].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM services").WillReturnError(errors.New("boom"))

	_, err = NewRepository(db).List(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("FROM services WHERE id = $1")).
			WithArgs("svc-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_minutes", "price"}).
				AddRow("svc-1", "Corte", 30, 35.0))

		svc, err := NewRepository(db).GetByID(context.Background(), "svc-1")

		require.NoError(t, err)
		assert.Equal(t, "Corte", svc.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM services").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_minutes", "price"}))

		_, err = NewRepository(db).GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}
