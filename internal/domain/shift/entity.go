package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

type ShiftType struct {
	ID           string
	Code         string
	Name         string
	StartTime    string // HH:mm:ss
	EndTime      string // HH:mm:ss
	BreakMinutes int
	WorkingHours decimal.Decimal // net hours after break
	IsOvernight  bool            // end_time < start_time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
