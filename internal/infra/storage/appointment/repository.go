package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

// Repository репозиторий для работы с записями клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Колонки записи вместе с присоединенной услугой
var appointmentColumns = []string{
	"a.id",
	"a.client_name",
	"a.phone_number",
	"a.service_id",
	"a.appointment_date",
	"a.status",
	"a.created_at",
	"s.id",
	"s.name",
	"s.duration_minutes",
	"s.price",
}

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("services s ON s.id = a.service_id")
}

// Create создает новую запись
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if apt.ID == "" {
		apt.ID = uuid.NewString()
	}
	if apt.Status == "" {
		apt.Status = domain.StatusConfirmed
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"client_name",
			"phone_number",
			"service_id",
			"appointment_date",
			"status",
		).
		Values(
			apt.ID,
			apt.ClientName,
			apt.PhoneNumber,
			apt.ServiceID,
			apt.Date,
			string(apt.Status),
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		// Оборачиваем с %w, чтобы txmanager распознал конфликт сериализации
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time

	return apt, nil
}

// GetByID получает запись по ID вместе с услугой
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().
		Where(squirrel.Eq{"a.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	apt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return apt, nil
}

// List получает записи в полуинтервале [From, To), отсортированные по времени
// Пустые границы не ограничивают выборку
func (r *Repository) List(ctx context.Context, rng domain.AppointmentRange) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointments()

	if rng.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"a.appointment_date": *rng.From})
	}
	if rng.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"a.appointment_date": *rng.To})
	}

	query, args, err := selectBuilder.
		OrderBy("a.appointment_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListActive получает неотмененные записи в полуинтервале [from, to)
// Внутри транзакции строки блокируются (FOR UPDATE) до ее завершения
func (r *Repository) ListActive(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectAppointments().
		Where(squirrel.GtOrEq{"a.appointment_date": from}).
		Where(squirrel.Lt{"a.appointment_date": to}).
		Where(squirrel.NotEq{"a.status": string(domain.StatusCancelled)}).
		OrderBy("a.appointment_date ASC")

	// В транзакции блокируем только строки appointments
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF a")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete удаляет запись (физическое удаление)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		apt       domain.Appointment
		svc       domain.Service
		status    sql.NullString
		createdAt sql.NullTime
	)

	err := row.Scan(
		&apt.ID,
		&apt.ClientName,
		&apt.PhoneNumber,
		&apt.ServiceID,
		&apt.Date,
		&status,
		&createdAt,
		&svc.ID,
		&svc.Name,
		&svc.DurationMinutes,
		&svc.Price,
	)
	if err != nil {
		return nil, err
	}

	// Отсутствующий статус трактуется как подтвержденный
	apt.Status = domain.StatusConfirmed
	if status.Valid && status.String != "" {
		apt.Status = domain.AppointmentStatus(status.String)
	}
	apt.CreatedAt = createdAt.Time
	apt.Service = &svc

	return &apt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		apt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}
