package calendar

import (
	"time"

	"github.com/shopspring/decimal"
)

const timeLayout = "15:04:05"

var minutesPerHour = decimal.NewFromInt(60)

// LineHours computes the duration of a report line from two "HH:mm:ss"
// times of the same day, rounded to 2 decimal places. Unparsable input or
// a non-positive difference yields zero. Overnight spans do not wrap:
// end before start is treated as invalid, not as crossing midnight.
func LineHours(start, end string) decimal.Decimal {
	startTime, err := time.Parse(timeLayout, start)
	if err != nil {
		return decimal.Zero
	}
	endTime, err := time.Parse(timeLayout, end)
	if err != nil {
		return decimal.Zero
	}

	diffMinutes := endTime.Sub(startTime).Minutes()
	if diffMinutes <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(diffMinutes).Div(minutesPerHour).Round(2)
}

// MonthlySummary reduces reconciled day rows to period totals. Only rows
// with the worked status contribute hours and count as work days; leave
// rows count as leave days. No row lands in more than one bucket.
func MonthlySummary(rows []DayRow) Summary {
	summary := Summary{
		TotalRegular: decimal.Zero,
		TotalOT:      decimal.Zero,
	}
	for _, row := range rows {
		switch {
		case row.Status == StatusWorkingLabel:
			summary.WorkDays++
			summary.TotalRegular = summary.TotalRegular.Add(row.RegularHours)
			summary.TotalOT = summary.TotalOT.Add(row.OTHours)
		case row.IsLeave:
			summary.LeaveDays++
		}
	}
	return summary
}
