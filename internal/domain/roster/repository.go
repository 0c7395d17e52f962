package roster

import (
	"context"
	"time"
)

type Repository interface {
	GetByEmployeeAndRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]Entry, error)
	// BulkUpsert inserts the entries, replacing existing auto-generated rows
	// when overwrite is true. Rows flagged manual_override are never touched.
	// Returns the number of rows inserted or updated.
	BulkUpsert(ctx context.Context, entries []Entry, overwrite bool) (int, error)
	// Override replaces a single day and flags it manual_override.
	Override(ctx context.Context, entry Entry) (Entry, error)
}
