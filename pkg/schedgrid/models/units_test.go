package models

import "testing"

func TestMinuteToClock(t *testing.T) {
	tests := []struct {
		offset   int
		expected string
	}{
		{0, "07:30"},
		{90, "09:00"},
		{390, "14:00"},
		{TotalSpan, "21:15"},
		{-450, "00:00"},
		{-460, "-00:10"},
		{1000, "24:10"},
	}

	for _, tt := range tests {
		result := MinuteToClock(tt.offset)
		if result != tt.expected {
			t.Errorf("MinuteToClock(%d) = %q, expected %q", tt.offset, result, tt.expected)
		}
	}
}

func TestTimetableDay(t *testing.T) {
	tt := &Timetable{Days: []DayLayout{{Day: Monday}, {Day: Friday}}}
	if dl := tt.Day(Friday); dl == nil || dl.Day != Friday {
		t.Errorf("Expected Friday layout, got %v", dl)
	}
	if tt.Day(Saturday) != nil {
		t.Error("Expected nil for missing day")
	}
}
