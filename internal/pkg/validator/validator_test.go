package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-10", "2023-12-31", "2024-02-29"}
	invalid := []string{"2024-13-01", "2023-02-29", "10-01-2024", "2024/01/10", "", "2024-1-1"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"08:00:00", "23:59:59", "00:00:00"}
	invalid := []string{"24:00:00", "08:00", "8:00:00", "08:60:00", "", "08:00:00.5"}
	for _, s := range valid {
		if _, ok := IsValidTimeOfDay(s); !ok {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidTimeOfDay(s); ok {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidCode(t *testing.T) {
	valid := []string{"MORNING", "SHIFT_A", "N-2", "OT1"}
	invalid := []string{"m", "morning", "SHIFT A", "", "VERY_LONG_SHIFT_CODE_OVER_LIMIT"}
	for _, code := range valid {
		if !IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidCode(code) {
			t.Errorf("IsValidCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidISOWeekday(t *testing.T) {
	for d := 1; d <= 7; d++ {
		if !IsValidISOWeekday(d) {
			t.Errorf("IsValidISOWeekday(%d) = false, want true", d)
		}
	}
	for _, d := range []int{0, 8, -1} {
		if IsValidISOWeekday(d) {
			t.Errorf("IsValidISOWeekday(%d) = true, want false", d)
		}
	}
}
