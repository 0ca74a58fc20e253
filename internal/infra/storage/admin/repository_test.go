package admin

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

func TestRepository_GetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, role, created_at FROM admin_users WHERE email = $1")).
			WithArgs("admin@barbearia.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}).
				AddRow("adm-1", "admin@barbearia.com", "hash", nil, created))

		user, err := NewRepository(db).GetByEmail(context.Background(), "  Admin@Barbearia.com ")

		require.NoError(t, err)
		assert.Equal(t, "adm-1", user.ID)
		assert.Nil(t, user.Role)
		assert.Equal(t, created, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("FROM admin_users").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at"}))

		_, err = NewRepository(db).GetByEmail(context.Background(), "nobody@barbearia.com")
		assert.ErrorIs(t, err, ErrAdminNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO admin_users (id,email,password_hash,role) VALUES ($1,$2,$3,$4) RETURNING created_at")).
			WithArgs(sqlmock.AnyArg(), "admin@barbearia.com", "hash", nil).
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		user, err := NewRepository(db).Create(context.Background(), &domain.AdminUser{
			Email:        "Admin@Barbearia.com",
			PasswordHash: "hash",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "admin@barbearia.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO admin_users").
			WillReturnError(&pq.Error{Code: "23505"})

		_, err = NewRepository(db).Create(context.Background(), &domain.AdminUser{Email: "admin@barbearia.com"})
		assert.ErrorIs(t, err, ErrAdminExists)
	})
}
