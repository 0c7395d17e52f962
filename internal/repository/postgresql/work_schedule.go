package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/schedule"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workScheduleRepositoryImpl struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepositoryImpl{db: db}
}

// Create implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) Create(ctx context.Context, workSchedule schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_schedules (
			id, code, name, type, is_active,
			working_days, default_shift_type_id, rotation_pattern, cycle_start_date,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		workSchedule.Code, workSchedule.Name, workSchedule.Type, workSchedule.IsActive,
		workSchedule.WorkingDays, workSchedule.DefaultShiftTypeID,
		workSchedule.RotationPattern, workSchedule.CycleStartDate,
	).Scan(&workSchedule.ID, &workSchedule.CreatedAt, &workSchedule.UpdatedAt)

	if err != nil {
		return schedule.WorkSchedule{}, err
	}

	return workSchedule, nil
}

const workScheduleColumns = `
	id, code, name, type, is_active,
	working_days, default_shift_type_id, rotation_pattern, cycle_start_date,
	created_at, updated_at
`

// GetByID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE id = $1 AND deleted_at IS NULL`

	var ws schedule.WorkSchedule
	err := q.QueryRow(ctx, query, id).Scan(
		&ws.ID, &ws.Code, &ws.Name, &ws.Type, &ws.IsActive,
		&ws.WorkingDays, &ws.DefaultShiftTypeID, &ws.RotationPattern, &ws.CycleStartDate,
		&ws.CreatedAt, &ws.UpdatedAt,
	)
	if err != nil {
		return schedule.WorkSchedule{}, err
	}

	return ws, nil
}

// List implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) List(ctx context.Context, filter schedule.WorkScheduleFilter) ([]schedule.WorkSchedule, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "deleted_at IS NULL"
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		where += fmt.Sprintf(" AND type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM work_schedules WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work schedules: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	selectQuery := fmt.Sprintf(
		`SELECT %s FROM work_schedules WHERE %s ORDER BY code ASC LIMIT $%d OFFSET $%d`,
		workScheduleColumns, where, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		var ws schedule.WorkSchedule
		if err := rows.Scan(
			&ws.ID, &ws.Code, &ws.Name, &ws.Type, &ws.IsActive,
			&ws.WorkingDays, &ws.DefaultShiftTypeID, &ws.RotationPattern, &ws.CycleStartDate,
			&ws.CreatedAt, &ws.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		schedules = append(schedules, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return schedules, total, nil
}

// Update implements schedule.WorkScheduleRepository. Code and type columns
// are never part of the SET list.
func (r *workScheduleRepositoryImpl) Update(ctx context.Context, req schedule.UpdateWorkScheduleRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.IsActive != nil {
		updates = append(updates, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}
	if len(req.WorkingDays) > 0 {
		updates = append(updates, fmt.Sprintf("working_days = $%d", argIdx))
		args = append(args, req.WorkingDays)
		argIdx++
	}
	if req.DefaultShiftTypeID != nil {
		updates = append(updates, fmt.Sprintf("default_shift_type_id = $%d", argIdx))
		args = append(args, *req.DefaultShiftTypeID)
		argIdx++
	}
	if len(req.RotationPattern) > 0 {
		updates = append(updates, fmt.Sprintf("rotation_pattern = $%d", argIdx))
		args = append(args, req.RotationPattern)
		argIdx++
	}
	if req.CycleStartDate != nil {
		updates = append(updates, fmt.Sprintf("cycle_start_date = $%d::date", argIdx))
		args = append(args, *req.CycleStartDate)
		argIdx++
	}

	if len(updates) == 0 {
		return nil
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	query := fmt.Sprintf(
		"UPDATE work_schedules SET %s WHERE id = $%d AND deleted_at IS NULL",
		strings.Join(updates, ", "), argIdx,
	)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return pgx.ErrNoRows
	}

	return nil
}

// SoftDelete implements schedule.WorkScheduleRepository.
func (r *workScheduleRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_schedules
		SET deleted_at = NOW(), is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return pgx.ErrNoRows
	}

	return nil
}
