package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftTypeRepositoryImpl struct {
	db *database.DB
}

func NewShiftTypeRepository(db *database.DB) shift.ShiftTypeRepository {
	return &shiftTypeRepositoryImpl{db: db}
}

// Create implements shift.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) Create(ctx context.Context, shiftType shift.ShiftType) (shift.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_types (
			id, code, name, start_time, end_time, break_minutes, working_hours, is_overnight, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3::time, $4::time, $5, $6, $7, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		shiftType.Code, shiftType.Name, shiftType.StartTime, shiftType.EndTime,
		shiftType.BreakMinutes, shiftType.WorkingHours, shiftType.IsOvernight,
	).Scan(&shiftType.ID, &shiftType.CreatedAt, &shiftType.UpdatedAt)

	if err != nil {
		return shift.ShiftType{}, err
	}

	return shiftType, nil
}

const shiftTypeColumns = `
	id, code, name,
	to_char(start_time, 'HH24:MI:SS') AS start_time,
	to_char(end_time, 'HH24:MI:SS') AS end_time,
	break_minutes, working_hours, is_overnight, created_at, updated_at
`

// GetByID implements shift.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) GetByID(ctx context.Context, id string) (shift.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftTypeColumns + ` FROM shift_types WHERE id = $1`

	var st shift.ShiftType
	err := q.QueryRow(ctx, query, id).Scan(
		&st.ID, &st.Code, &st.Name, &st.StartTime, &st.EndTime,
		&st.BreakMinutes, &st.WorkingHours, &st.IsOvernight, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return shift.ShiftType{}, err
	}

	return st, nil
}

// GetByCodes implements shift.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) GetByCodes(ctx context.Context, codes []string) ([]shift.ShiftType, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + shiftTypeColumns + ` FROM shift_types WHERE code = ANY($1)`

	rows, err := q.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift types: %w", err)
	}
	defer rows.Close()

	return scanShiftTypes(rows)
}

// List implements shift.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) List(ctx context.Context, filter shift.ShiftTypeFilter) ([]shift.ShiftType, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		where += fmt.Sprintf(" AND name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.Code != nil && *filter.Code != "" {
		where += fmt.Sprintf(" AND code = $%d", argIdx)
		args = append(args, *filter.Code)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM shift_types WHERE " + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count shift types: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	selectQuery := fmt.Sprintf(
		`SELECT %s FROM shift_types WHERE %s ORDER BY code ASC LIMIT $%d OFFSET $%d`,
		shiftTypeColumns, where, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query shift types: %w", err)
	}
	defer rows.Close()

	shiftTypes, err := scanShiftTypes(rows)
	if err != nil {
		return nil, 0, err
	}

	return shiftTypes, total, nil
}

// shiftTypeUpdateSet builds the SET clauses and arguments for Update.
// The overnight flag compares the effective new times: the request value
// for a column the update changes, the stored column otherwise. SET
// expressions in PostgreSQL always read the pre-update row, so comparing
// start_time and end_time directly would use stale times whenever the
// same statement changes them.
func shiftTypeUpdateSet(req shift.UpdateShiftTypeRequest) ([]string, []interface{}) {
	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.StartTime != nil {
		updates = append(updates, fmt.Sprintf("start_time = $%d::time", argIdx))
		args = append(args, *req.StartTime)
		argIdx++
	}
	if req.EndTime != nil {
		updates = append(updates, fmt.Sprintf("end_time = $%d::time", argIdx))
		args = append(args, *req.EndTime)
		argIdx++
	}
	if req.BreakMinutes != nil {
		updates = append(updates, fmt.Sprintf("break_minutes = $%d", argIdx))
		args = append(args, *req.BreakMinutes)
		argIdx++
	}
	if req.WorkingHours != nil {
		updates = append(updates, fmt.Sprintf("working_hours = $%d", argIdx))
		args = append(args, *req.WorkingHours)
		argIdx++
	}
	if req.StartTime != nil || req.EndTime != nil {
		updates = append(updates, fmt.Sprintf(
			"is_overnight = (COALESCE($%d::time, end_time) < COALESCE($%d::time, start_time))",
			argIdx, argIdx+1,
		))
		args = append(args, req.EndTime, req.StartTime)
	}

	if len(updates) == 0 {
		return nil, nil
	}

	updates = append(updates, "updated_at = NOW()")
	return updates, args
}

// Update implements shift.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) Update(ctx context.Context, req shift.UpdateShiftTypeRequest) error {
	q := GetQuerier(ctx, r.db)

	updates, args := shiftTypeUpdateSet(req)
	if len(updates) == 0 {
		return nil
	}

	query := fmt.Sprintf("UPDATE shift_types SET %s WHERE id = $%d", strings.Join(updates, ", "), len(args)+1)
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

// Delete implements shift.ShiftTypeRepository.
func (r *shiftTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shift_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return pgx.ErrNoRows
	}

	return nil
}

func scanShiftTypes(rows pgx.Rows) ([]shift.ShiftType, error) {
	var shiftTypes []shift.ShiftType
	for rows.Next() {
		var st shift.ShiftType
		if err := rows.Scan(
			&st.ID, &st.Code, &st.Name, &st.StartTime, &st.EndTime,
			&st.BreakMinutes, &st.WorkingHours, &st.IsOvernight, &st.CreatedAt, &st.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift type: %w", err)
		}
		shiftTypes = append(shiftTypes, st)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return shiftTypes, nil
}
