package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func fixedSchedule(workingDays []int, shiftID string) WorkSchedule {
	return WorkSchedule{
		Code:               "FIX-STD",
		Type:               ScheduleTypeFixed,
		WorkingDays:        workingDays,
		DefaultShiftTypeID: &shiftID,
	}
}

func rotatingSchedule(pattern []string, anchor *time.Time) WorkSchedule {
	return WorkSchedule{
		Code:            "ROT-STD",
		Type:            ScheduleTypeRotating,
		RotationPattern: pattern,
		CycleStartDate:  anchor,
	}
}

func TestResolveDay_FixedDependsOnlyOnWeekday(t *testing.T) {
	ws := fixedSchedule([]int{1, 2, 3, 4, 5}, "DAY")

	// Same weekday across different months and years resolves identically.
	mondays := []time.Time{
		time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC),
	}
	for _, monday := range mondays {
		res, err := ResolveDay(ws, monday)
		require.NoError(t, err)
		assert.True(t, res.IsWorkingDay)
		require.NotNil(t, res.ShiftTypeCode)
		assert.Equal(t, "DAY", *res.ShiftTypeCode)
	}

	sundays := []time.Time{
		time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, sunday := range sundays {
		res, err := ResolveDay(ws, sunday)
		require.NoError(t, err)
		assert.False(t, res.IsWorkingDay)
		assert.Nil(t, res.ShiftTypeCode)
	}
}

func TestResolveDay_RotatingCycleRepeatsEveryN(t *testing.T) {
	anchor := datePtr(2024, time.January, 10)
	ws := rotatingSchedule([]string{"MORNING", "NIGHT", "OFF"}, anchor)

	for k := -10; k <= 10; k++ {
		date := anchor.AddDate(0, 0, k)
		next := anchor.AddDate(0, 0, k+3)

		got, err := ResolveDay(ws, date)
		require.NoError(t, err)
		want, err := ResolveDay(ws, next)
		require.NoError(t, err)

		assert.Equal(t, want.IsWorkingDay, got.IsWorkingDay, "offset %d", k)
		if want.ShiftTypeCode == nil {
			assert.Nil(t, got.ShiftTypeCode, "offset %d", k)
		} else {
			require.NotNil(t, got.ShiftTypeCode, "offset %d", k)
			assert.Equal(t, *want.ShiftTypeCode, *got.ShiftTypeCode, "offset %d", k)
		}
	}
}

func TestResolveDay_RotatingBeforeAnchor(t *testing.T) {
	anchor := datePtr(2024, time.January, 10)
	ws := rotatingSchedule([]string{"MORNING", "NIGHT", "OFF"}, anchor)

	// 3 days before the anchor wraps back to index 0.
	res, err := ResolveDay(ws, time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, res.IsWorkingDay)
	require.NotNil(t, res.ShiftTypeCode)
	assert.Equal(t, "MORNING", *res.ShiftTypeCode)

	// 1 day before the anchor maps to the last pattern entry.
	res, err = ResolveDay(ws, time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, res.IsWorkingDay)
	assert.Nil(t, res.ShiftTypeCode)
}

func TestResolveDay_RotatingOnAnchor(t *testing.T) {
	anchor := datePtr(2024, time.January, 10)
	ws := rotatingSchedule([]string{"MORNING", "NIGHT", "OFF"}, anchor)

	res, err := ResolveDay(ws, *anchor)
	require.NoError(t, err)
	assert.True(t, res.IsWorkingDay)
	require.NotNil(t, res.ShiftTypeCode)
	assert.Equal(t, "MORNING", *res.ShiftTypeCode)
}

func TestResolveDay_MisconfigurationFailsLoudly(t *testing.T) {
	date := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		ws      WorkSchedule
		wantErr error
	}{
		{
			name:    "empty rotation pattern",
			ws:      rotatingSchedule(nil, datePtr(2024, time.January, 1)),
			wantErr: ErrRotationPatternEmpty,
		},
		{
			name:    "missing cycle anchor",
			ws:      rotatingSchedule([]string{"MORNING", "OFF"}, nil),
			wantErr: ErrCycleStartDateMissing,
		},
		{
			name:    "fixed without working days",
			ws:      fixedSchedule(nil, "DAY"),
			wantErr: ErrWorkingDaysEmpty,
		},
		{
			name: "fixed without default shift",
			ws: WorkSchedule{
				Type:        ScheduleTypeFixed,
				WorkingDays: []int{1, 2, 3},
			},
			wantErr: ErrDefaultShiftMissing,
		},
		{
			name:    "unknown schedule type",
			ws:      WorkSchedule{Type: ScheduleType("FLEX")},
			wantErr: ErrUnknownScheduleType,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ResolveDay(c.ws, date)
			require.Error(t, err)
			assert.ErrorIs(t, err, c.wantErr)
			assert.ErrorIs(t, err, ErrScheduleMisconfigured)
		})
	}
}

func TestISOWeekday(t *testing.T) {
	// 2024-01-08 is a Monday.
	for i := 0; i < 7; i++ {
		date := time.Date(2024, time.January, 8+i, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, i+1, ISOWeekday(date))
	}
}
