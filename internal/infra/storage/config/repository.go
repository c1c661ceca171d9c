package config

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/axlexpert/AX-BookingService/internal/domain"
	"github.com/axlexpert/AX-BookingService/pkg/dbmetrics"
	"github.com/axlexpert/AX-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var configColumns = []string{
	"id",
	"branch_id",
	"service_id",
	"slot_duration_minutes",
	"max_concurrent_bookings",
	"advance_booking_days",
	"min_booking_notice_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с конфигурацией слотов филиалов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов:
// сначала ищется конфигурация конкретной услуги в филиале, затем общая
// конфигурация филиала. Если ничего не найдено - ErrConfigNotFound.
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, branchID int64, serviceID *int64) (*domain.BranchSlotsConfig, error) {
	if serviceID != nil {
		cfg, err := r.getOne(ctx, squirrel.Eq{"branch_id": branchID, "service_id": *serviceID})
		if err == nil {
			return cfg, nil
		}
		if err != ErrConfigNotFound {
			return nil, err
		}
	}

	return r.getOne(ctx, squirrel.Eq{"branch_id": branchID, "service_id": nil})
}

// GetAllByBranch получает все конфигурации филиала (общую и сервисные)
func (r *Repository) GetAllByBranch(ctx context.Context, branchID int64) ([]*domain.BranchSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("branch_slots_config").
		Where(squirrel.Eq{"branch_id": branchID}).
		OrderBy("service_id ASC NULLS FIRST").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByBranch - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByBranch - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	configs := make([]*domain.BranchSlotsConfig, 0)
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllByBranch - rows error: %v", ErrScanRow, err)
	}

	return configs, nil
}

// Upsert создает или обновляет конфигурацию филиала (и опционально услуги).
// Уникальность пары (branch_id, service_id) обеспечивается индексом.
func (r *Repository) Upsert(ctx context.Context, cfg *domain.BranchSlotsConfig) (*domain.BranchSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("branch_slots_config").
		Columns(
			"branch_id",
			"service_id",
			"slot_duration_minutes",
			"max_concurrent_bookings",
			"advance_booking_days",
			"min_booking_notice_minutes",
		).
		Values(
			cfg.BranchID,
			cfg.ServiceID,
			cfg.SlotDurationMinutes,
			cfg.MaxConcurrentBookings,
			cfg.AdvanceBookingDays,
			cfg.MinBookingNoticeMinutes,
		).
		Suffix(`ON CONFLICT (branch_id, COALESCE(service_id, 0)) DO UPDATE SET
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			max_concurrent_bookings = EXCLUDED.max_concurrent_bookings,
			advance_booking_days = EXCLUDED.advance_booking_days,
			min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.BranchSlotsConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("branch_slots_config").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.BranchSlotsConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.BranchID,
		&cfg.ServiceID,
		&cfg.SlotDurationMinutes,
		&cfg.MaxConcurrentBookings,
		&cfg.AdvanceBookingDays,
		&cfg.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan config: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}

func scanConfig(rows *sql.Rows) (*domain.BranchSlotsConfig, error) {
	var cfg domain.BranchSlotsConfig
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&cfg.ID,
		&cfg.BranchID,
		&cfg.ServiceID,
		&cfg.SlotDurationMinutes,
		&cfg.MaxConcurrentBookings,
		&cfg.AdvanceBookingDays,
		&cfg.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanConfig - scan row: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
