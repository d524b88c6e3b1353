package dateutil

import (
	"testing"
	"time"
)

func TestIsWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input Date
		want  bool
	}{
		{"Monday is weekday", Date{2025, time.January, 13}, true},
		{"Tuesday is weekday", Date{2025, time.January, 14}, true},
		{"Wednesday is weekday", Date{2025, time.January, 15}, true},
		{"Thursday is weekday", Date{2025, time.January, 16}, true},
		{"Friday is weekday", Date{2025, time.January, 17}, true},
		{"Saturday is not weekday", Date{2025, time.January, 18}, false},
		{"Sunday is not weekday", Date{2025, time.January, 19}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekday(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekday(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name  string
		input Date
		want  bool
	}{
		{"Saturday is weekend", Date{2025, time.January, 18}, true},
		{"Sunday is weekend", Date{2025, time.January, 19}, true},
		{"Monday is not weekend", Date{2025, time.January, 13}, false},
		{"Friday is not weekend", Date{2025, time.January, 17}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsWeekend(tt.input)

			if result != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a    Date
		b    Date
		want int
	}{
		{"Same day", Date{2025, time.January, 15}, Date{2025, time.January, 15}, 0},
		{"One week apart", Date{2025, time.January, 13}, Date{2025, time.January, 20}, 7},
		{"Across year boundary", Date{2018, time.December, 31}, Date{2019, time.January, 2}, 2},
		{"Backward", Date{2025, time.January, 20}, Date{2025, time.January, 13}, -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DaysBetween(tt.a, tt.b)

			if result != tt.want {
				t.Errorf("DaysBetween(%v, %v) = %v, want %v", tt.a, tt.b, result, tt.want)
			}
		})
	}
}

func TestToday(t *testing.T) {
	now := time.Now()
	result := Today()

	if result != DateOf(now) && result != DateOf(now.AddDate(0, 0, 1)) {
		t.Errorf("Today() = %v, not close to %v", result, now)
	}
}
