package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/workforce-backend-go/internal/domain/roster"
	"github.com/cmlabs-hris/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type rosterRepositoryImpl struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.Repository {
	return &rosterRepositoryImpl{db: db}
}

const rosterColumns = `
	id, employee_id, roster_date, shift_type_code, is_working_day,
	to_char(start_time, 'HH24:MI:SS') AS start_time,
	to_char(end_time, 'HH24:MI:SS') AS end_time,
	manual_override, created_at, updated_at
`

// GetByEmployeeAndRange implements roster.Repository.
func (r *rosterRepositoryImpl) GetByEmployeeAndRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]roster.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + rosterColumns + `
		FROM roster_entries
		WHERE employee_id = $1 AND roster_date BETWEEN $2 AND $3
		ORDER BY roster_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster entries: %w", err)
	}
	defer rows.Close()

	var entries []roster.Entry
	for rows.Next() {
		entry, err := scanRosterEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

const upsertOverwriteQuery = `
	INSERT INTO roster_entries (
		id, employee_id, roster_date, shift_type_code, is_working_day,
		start_time, end_time, manual_override, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6::time, $7::time, FALSE, NOW(), NOW())
	ON CONFLICT (employee_id, roster_date) DO UPDATE SET
		shift_type_code = EXCLUDED.shift_type_code,
		is_working_day = EXCLUDED.is_working_day,
		start_time = EXCLUDED.start_time,
		end_time = EXCLUDED.end_time,
		updated_at = NOW()
	WHERE NOT roster_entries.manual_override
`

const upsertKeepQuery = `
	INSERT INTO roster_entries (
		id, employee_id, roster_date, shift_type_code, is_working_day,
		start_time, end_time, manual_override, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6::time, $7::time, FALSE, NOW(), NOW())
	ON CONFLICT (employee_id, roster_date) DO NOTHING
`

// BulkUpsert implements roster.Repository. The conflict clause keeps
// manually overridden rows untouched no matter what the overwrite flag
// says; the returned count covers only rows actually written.
func (r *rosterRepositoryImpl) BulkUpsert(ctx context.Context, entries []roster.Entry, overwrite bool) (int, error) {
	query := upsertKeepQuery
	if overwrite {
		query = upsertOverwriteQuery
	}

	written := 0
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, entry := range entries {
			batch.Queue(query,
				entry.ID, entry.EmployeeID, entry.RosterDate, entry.ShiftTypeCode,
				entry.IsWorkingDay, entry.StartTime, entry.EndTime,
			)
		}

		results := tx.SendBatch(ctx, batch)
		defer results.Close()

		for range entries {
			commandTag, err := results.Exec()
			if err != nil {
				return fmt.Errorf("failed to upsert roster entry: %w", err)
			}
			written += int(commandTag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return written, nil
}

// Override implements roster.Repository. An override wins over both the
// generator and earlier overrides.
func (r *rosterRepositoryImpl) Override(ctx context.Context, entry roster.Entry) (roster.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO roster_entries (
			id, employee_id, roster_date, shift_type_code, is_working_day,
			start_time, end_time, manual_override, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6::time, $7::time, TRUE, NOW(), NOW())
		ON CONFLICT (employee_id, roster_date) DO UPDATE SET
			shift_type_code = EXCLUDED.shift_type_code,
			is_working_day = EXCLUDED.is_working_day,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			manual_override = TRUE,
			updated_at = NOW()
		RETURNING ` + rosterColumns + `
	`

	row := q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeID, entry.RosterDate, entry.ShiftTypeCode,
		entry.IsWorkingDay, entry.StartTime, entry.EndTime,
	)
	return scanRosterEntry(row)
}

func scanRosterEntry(row pgx.Row) (roster.Entry, error) {
	var entry roster.Entry
	err := row.Scan(
		&entry.ID, &entry.EmployeeID, &entry.RosterDate, &entry.ShiftTypeCode,
		&entry.IsWorkingDay, &entry.StartTime, &entry.EndTime,
		&entry.ManualOverride, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return roster.Entry{}, err
	}
	return entry, nil
}
