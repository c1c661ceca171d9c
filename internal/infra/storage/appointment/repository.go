package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	"github.com/axlexpert/AX-BookingService/pkg/dbmetrics"
	"github.com/axlexpert/AX-BookingService/pkg/psqlbuilder"
)

// appointmentColumns список колонок таблицы appointments в порядке сканирования
var appointmentColumns = []string{
	"id",
	"customer_id",
	"branch_id",
	"service_id",
	"vehicle_id",
	"customer_name",
	"customer_phone",
	"appointment_date",
	"start_time",
	"status",
	"service_name",
	"total_price",
	"branch_name",
	"vehicle_description",
	"notes",
	"assigned_employee_id",
	"assigned_employee_name",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями на обслуживание
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на обслуживание.
// Если в контексте передана активная транзакция, использует её — так
// проверка доступности слота и вставка выполняются атомарно.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"branch_id",
			"service_id",
			"vehicle_id",
			"customer_name",
			"customer_phone",
			"appointment_date",
			"start_time",
			"status",
			"service_name",
			"total_price",
			"branch_name",
			"vehicle_description",
			"notes",
		).
		Values(
			appt.CustomerID,
			appt.BranchID,
			appt.ServiceID,
			appt.VehicleID,
			appt.CustomerName,
			appt.CustomerPhone,
			appt.Date,
			appt.Time,
			appt.Status,
			appt.ServiceName,
			appt.TotalPrice,
			appt.BranchName,
			appt.VehicleDescription,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointmentRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetByCustomerID получает записи клиента, опционально фильтруя по статусу
func (r *Repository) GetByCustomerID(ctx context.Context, customerID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("appointment_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomerID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetWithFilter получает записи с гибкой фильтрацией по филиалу, периоду и
// статусу. Неактивные (отменённые) записи по умолчанию исключаются.
//
// Внутри транзакции при запросе на конкретную дату добавляется FOR UPDATE:
// этим пользуется создание записи, чтобы проверка занятости слота и вставка
// не разъезжались под конкурентной нагрузкой.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BranchAppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments")

	// Фильтрация по филиалу (если указан)
	if filter.BranchID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"branch_id": *filter.BranchID})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)

	// Для конкретной даты сортируем по времени начала, для периода -
	// сначала новые
	if singleDate {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC, start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Approve переводит запись в статус APPROVED и назначает сотрудника.
// Условие по текущему статусу продублировано в SQL: даже если сервисный
// слой ошибётся, запись не перескочит из терминального статуса.
func (r *Repository) Approve(ctx context.Context, id int64, employeeID int64, employeeName string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusApproved).
		Set("assigned_employee_id", employeeID).
		Set("assigned_employee_name", employeeName).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Approve - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, id, query, args)
}

// Complete переводит запись из APPROVED в COMPLETED
func (r *Repository) Complete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCompleted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusApproved}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Complete - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, id, query, args)
}

// Cancel отменяет запись с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":     id,
			"status": []string{string(domain.StatusPending), string(domain.StatusApproved)},
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, id, query, args)
}

// Delete физически удаляет запись. Допустимо только для статуса PENDING;
// подтверждённые и завершённые записи отменяются через Cancel, чтобы
// сохранить историю.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("appointments").
		Where(squirrel.Eq{"id": id, "status": domain.StatusPending}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, id, query, args)
}

// execExpectingRow выполняет запрос и различает "записи нет" и
// "запись есть, но статус уже другой"
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, id int64, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Запись либо отсутствует, либо статус уже не допускает операцию
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return ErrAppointmentNotFound
		}
		return ErrStatusConflict
	}

	return nil
}

// scanAppointmentRow сканирует одну строку результата в доменную модель
func scanAppointmentRow(row *sql.Row) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.CustomerID,
		&appt.BranchID,
		&appt.ServiceID,
		&appt.VehicleID,
		&appt.CustomerName,
		&appt.CustomerPhone,
		&appt.Date,
		&appt.Time,
		&appt.Status,
		&appt.ServiceName,
		&appt.TotalPrice,
		&appt.BranchName,
		&appt.VehicleDescription,
		&appt.Notes,
		&appt.AssignedEmployeeID,
		&appt.AssignedEmployeeName,
		&appt.CancellationReason,
		&appt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.CustomerID,
			&appt.BranchID,
			&appt.ServiceID,
			&appt.VehicleID,
			&appt.CustomerName,
			&appt.CustomerPhone,
			&appt.Date,
			&appt.Time,
			&appt.Status,
			&appt.ServiceName,
			&appt.TotalPrice,
			&appt.BranchName,
			&appt.VehicleDescription,
			&appt.Notes,
			&appt.AssignedEmployeeID,
			&appt.AssignedEmployeeName,
			&appt.CancellationReason,
			&appt.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
