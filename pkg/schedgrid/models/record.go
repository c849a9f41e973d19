package models

// ScheduleEntry is one contiguous meeting window shared by a set of days.
type ScheduleEntry struct {
	// Days are the weekdays this window applies to.
	Days DaySet `json:"days" yaml:"days"`
	// Room is the room text from the same grid row.
	Room string `json:"room" yaml:"room"`
	// StartMinute is the start offset from the 07:30 anchor.
	StartMinute int `json:"start_minute" yaml:"start_minute"`
	// EndMinute is the end offset from the 07:30 anchor.
	EndMinute int `json:"end_minute" yaml:"end_minute"`
}

// ClassRecord is one parsed class section with its meeting windows.
type ClassRecord struct {
	// QueryString is reserved for callers that link a record back to its source page.
	QueryString string `json:"query_string,omitempty" yaml:"query_string,omitempty"`
	// Section is the section code from the grid.
	Section string `json:"section" yaml:"section"`
	// Professor is reserved; the grid parser never fills it.
	Professor string `json:"professor,omitempty" yaml:"professor,omitempty"`
	// Schedule lists meeting windows in grid order.
	Schedule []ScheduleEntry `json:"schedule" yaml:"schedule"`
}

// MeetsOn reports whether any entry of the record includes d.
func (c *ClassRecord) MeetsOn(d Day) bool {
	for _, e := range c.Schedule {
		if e.Days.Has(d) {
			return true
		}
	}
	return false
}
