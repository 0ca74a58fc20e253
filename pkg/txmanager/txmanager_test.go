package txmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TxManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(dbmetrics.Wrap(db, nil)), mock
}

func TestTxManager_DoSerializable(t *testing.T) {
	t.Run("commit on success", func(t *testing.T) {
		m, mock := newManager(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO appointments").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
			assert.True(t, dbmetrics.IsInTransaction(ctx))
			_, err := dbmetrics.GetExecutor(ctx, nil).ExecContext(ctx, "INSERT INTO appointments VALUES (1)")
			return err
		})

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		m, mock := newManager(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.False(t, errors.Is(err, ErrSerialization))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("serialization failure is classified", func(t *testing.T) {
		m, mock := newManager(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO appointments").WillReturnError(&pq.Error{Code: "40001"})
		mock.ExpectRollback()

		err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
			_, err := dbmetrics.GetExecutor(ctx, nil).ExecContext(ctx, "INSERT INTO appointments VALUES (1)")
			return err
		})

		assert.ErrorIs(t, err, ErrSerialization)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nested call reuses transaction", func(t *testing.T) {
		m, mock := newManager(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		calls := 0
		err := m.Do(context.Background(), func(ctx context.Context) error {
			return m.DoSerializable(ctx, func(ctx context.Context) error {
				calls++
				return nil
			})
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(&pq.Error{Code: "40001"}))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
	assert.False(t, IsSerializationFailure(errors.New("other")))
	assert.True(t, IsSerializationFailure(ErrSerialization))
}
