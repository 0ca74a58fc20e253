package appointment

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
)

var columns = []string{
	"id", "client_name", "phone_number", "service_id", "appointment_date", "status", "created_at",
	"s_id", "s_name", "s_duration_minutes", "s_price",
}

func setup(t *testing.T) (*Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock, db
}

func TestRepository_Create(t *testing.T) {
	repo, mock, _ := setup(t)
	start := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments (id,client_name,phone_number,service_id,appointment_date,status) VALUES ($1,$2,$3,$4,$5,$6) RETURNING created_at")).
		WithArgs(sqlmock.AnyArg(), "João", "(85) 99401-5283", "svc-1", start, "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	apt, err := repo.Create(context.Background(), &domain.Appointment{
		ClientName:  "João",
		PhoneNumber: "(85) 99401-5283",
		ServiceID:   "svc-1",
		Date:        start,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, apt.ID)
	assert.Equal(t, domain.StatusConfirmed, apt.Status)
	assert.Equal(t, created, apt.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Error(t *testing.T) {
	repo, mock, _ := setup(t)

	mock.ExpectQuery("INSERT INTO appointments").WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Appointment{ID: "apt-1", ServiceID: "svc-1"})

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	start := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	t.Run("found with null status", func(t *testing.T) {
		repo, mock, _ := setup(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM appointments a JOIN services s ON s.id = a.service_id WHERE a.id = $1")).
			WithArgs("apt-1").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("apt-1", "João", "(85) 99401-5283", "svc-1", start, nil, start, "svc-1", "Corte", 30, 35.0))

		apt, err := repo.GetByID(context.Background(), "apt-1")

		require.NoError(t, err)
		assert.Equal(t, "apt-1", apt.ID)
		assert.Equal(t, domain.StatusConfirmed, apt.Status)
		require.NotNil(t, apt.Service)
		assert.Equal(t, "Corte", apt.Service.Name)
		assert.Equal(t, 30, apt.Service.DurationMinutes)
		assert.Equal(t, 35.0, apt.Service.Price)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, _ := setup(t)

		mock.ExpectQuery("FROM appointments a").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.GetByID(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_List(t *testing.T) {
	from := time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)
	start := from.Add(12 * time.Hour)

	t.Run("bounded range ordered ascending", func(t *testing.T) {
		repo, mock, _ := setup(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE a.appointment_date >= $1 AND a.appointment_date < $2 ORDER BY a.appointment_date ASC")).
			WithArgs(from, to).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow("apt-1", "João", "(85) 99401-5283", "svc-1", start, "confirmed", start, "svc-1", "Corte", 30, 35.0).
				AddRow("apt-2", "Maria", "(85) 3234-5678", "svc-1", start.Add(time.Hour), "cancelled", start, "svc-1", "Corte", 30, 35.0))

		list, err := repo.List(context.Background(), domain.AppointmentRange{From: &from, To: &to})

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "apt-1", list[0].ID)
		assert.Equal(t, domain.StatusCancelled, list[1].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unbounded", func(t *testing.T) {
		repo, mock, _ := setup(t)

		mock.ExpectQuery(regexp.QuoteMeta("JOIN services s ON s.id = a.service_id ORDER BY a.appointment_date ASC")).
			WillReturnRows(sqlmock.NewRows(columns))

		list, err := repo.List(context.Background(), domain.AppointmentRange{})

		require.NoError(t, err)
		assert.Empty(t, list)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_ListActive(t *testing.T) {
	from := time.Date(2026, 3, 9, 3, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	t.Run("without transaction", func(t *testing.T) {
		repo, mock, _ := setup(t)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE a.appointment_date >= $1 AND a.appointment_date < $2 AND a.status <> $3 ORDER BY a.appointment_date ASC")).
			WithArgs(from, to, "cancelled").
			WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.ListActive(context.Background(), from, to)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("locks rows inside transaction", func(t *testing.T) {
		repo, mock, db := setup(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("ORDER BY a.appointment_date ASC FOR UPDATE OF a")).
			WithArgs(from, to, "cancelled").
			WillReturnRows(sqlmock.NewRows(columns))
		mock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)
		ctx := dbmetrics.WithTx(context.Background(), tx)

		_, err = repo.ListActive(ctx, from, to)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, _ := setup(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1 WHERE id = $2")).
			WithArgs("cancelled", "apt-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), "apt-1", domain.StatusCancelled)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, _ := setup(t)

		mock.ExpectExec("UPDATE appointments").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), "missing", domain.StatusConfirmed)

		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, _ := setup(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM appointments WHERE id = $1")).
			WithArgs("apt-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(context.Background(), "apt-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock, _ := setup(t)

		mock.ExpectExec("DELETE FROM appointments").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), ErrAppointmentNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock, _ := setup(t)

		mock.ExpectExec("DELETE FROM appointments").
			WillReturnError(errors.New("boom"))

		assert.ErrorIs(t, repo.Delete(context.Background(), "apt-1"), ErrExecQuery)
	})
}
