package calendar

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineHours(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"regular shift", "08:00:00", "12:30:00", "4.5"},
		{"full day", "08:00:00", "17:00:00", "9"},
		{"one minute", "08:00:00", "08:01:00", "0.02"},
		{"missing start", "", "17:00:00", "0"},
		{"missing end", "08:00:00", "", "0"},
		{"zero duration", "08:00:00", "08:00:00", "0"},
		{"end before start", "17:00:00", "08:00:00", "0"},
		{"garbage input", "not-a-time", "17:00:00", "0"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := LineHours(c.start, c.end)
			want := decimal.RequireFromString(c.want)
			assert.True(t, got.Equal(want), "LineHours(%q, %q) = %s, want %s", c.start, c.end, got, want)
		})
	}
}

func TestMonthlySummary(t *testing.T) {
	rows := []DayRow{
		{Date: "2024-03-01", Status: StatusWorkingLabel, RegularHours: decimal.NewFromInt(8), OTHours: decimal.Zero},
		{Date: "2024-03-02", Status: StatusDayOffLabel, RegularHours: decimal.Zero, OTHours: decimal.Zero},
		{Date: "2024-03-04", Status: StatusWorkingLabel, RegularHours: decimal.NewFromInt(8), OTHours: decimal.NewFromInt(2)},
		{Date: "2024-03-05", Status: "ลาพักร้อน", IsLeave: true, RegularHours: decimal.Zero, OTHours: decimal.Zero},
		{Date: "2024-03-06", Status: StatusWorkingLabel, RegularHours: decimal.NewFromInt(4), OTHours: decimal.Zero},
	}

	summary := MonthlySummary(rows)

	assert.Equal(t, 3, summary.WorkDays)
	assert.Equal(t, 1, summary.LeaveDays)
	assert.True(t, summary.TotalRegular.Equal(decimal.NewFromInt(20)), "TotalRegular = %s", summary.TotalRegular)
	assert.True(t, summary.TotalOT.Equal(decimal.NewFromInt(2)), "TotalOT = %s", summary.TotalOT)
}

func TestMonthlySummary_NoDoubleCounting(t *testing.T) {
	// A worked row never counts as leave even if a leave flag slipped in.
	rows := []DayRow{
		{Date: "2024-03-01", Status: StatusWorkingLabel, IsLeave: true, RegularHours: decimal.NewFromInt(8), OTHours: decimal.Zero},
	}

	summary := MonthlySummary(rows)

	assert.Equal(t, 1, summary.WorkDays)
	assert.Equal(t, 0, summary.LeaveDays)
}

func TestMonthlySummary_NoDriftOverFullMonth(t *testing.T) {
	// 30 days of 7.7 hours sums to exactly 231 with decimal accumulation.
	var rows []DayRow
	for i := 0; i < 30; i++ {
		rows = append(rows, DayRow{
			Status:       StatusWorkingLabel,
			RegularHours: decimal.NewFromFloat(7.7),
			OTHours:      decimal.NewFromFloat(0.3),
		})
	}

	summary := MonthlySummary(rows)

	assert.True(t, summary.TotalRegular.Equal(decimal.NewFromInt(231)), "TotalRegular = %s", summary.TotalRegular)
	assert.True(t, summary.TotalOT.Equal(decimal.NewFromInt(9)), "TotalOT = %s", summary.TotalOT)
}
