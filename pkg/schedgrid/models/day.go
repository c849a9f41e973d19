package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Day is a single-letter weekday symbol as printed in the class schedule grid.
type Day byte

const (
	Monday    Day = 'M'
	Tuesday   Day = 'T'
	Wednesday Day = 'W'
	Thursday  Day = 'H'
	Friday    Day = 'F'
	Saturday  Day = 'S'
)

// Weekdays lists every representable day in calendar order.
// Sunday has no symbol.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var dayNames = map[Day]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// ParseDay maps a rune to its Day.
func ParseDay(r rune) (Day, bool) {
	if r > 0x7f {
		return 0, false
	}
	d := Day(r)
	if _, ok := dayNames[d]; !ok {
		return 0, false
	}
	return d, true
}

func (d Day) String() string {
	return string(rune(d))
}

// Name returns the full English weekday name, or "" for an unknown symbol.
func (d Day) Name() string {
	return dayNames[d]
}

func (d Day) index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return -1
}

// MarshalJSON encodes the day as its one-letter symbol.
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// MarshalYAML encodes the day as its one-letter symbol.
func (d Day) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// DaySet is a set of weekdays. Iteration is always in calendar order.
type DaySet uint8

// NewDaySet builds a set from the given days. Unknown symbols are ignored.
func NewDaySet(days ...Day) DaySet {
	var s DaySet
	for _, d := range days {
		s = s.Add(d)
	}
	return s
}

// Add returns a copy of the set that also contains d.
func (s DaySet) Add(d Day) DaySet {
	i := d.index()
	if i < 0 {
		return s
	}
	return s | 1<<uint(i)
}

// Has reports whether d is in the set.
func (s DaySet) Has(d Day) bool {
	i := d.index()
	return i >= 0 && s&(1<<uint(i)) != 0
}

// Len returns the number of days in the set.
func (s DaySet) Len() int {
	n := 0
	for _, d := range Weekdays {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the set has no days.
func (s DaySet) IsEmpty() bool {
	return s == 0
}

// Days returns the members in calendar order.
func (s DaySet) Days() []Day {
	days := make([]Day, 0, len(Weekdays))
	for _, d := range Weekdays {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// String renders the set the way the grid does, e.g. "MWF".
func (s DaySet) String() string {
	var b strings.Builder
	for _, d := range s.Days() {
		b.WriteByte(byte(d))
	}
	return b.String()
}

func (s DaySet) symbols() []string {
	days := s.Days()
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.String()
	}
	return out
}

// MarshalJSON encodes the set as an array of day symbols.
func (s DaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.symbols())
}

// UnmarshalJSON decodes an array of day symbols.
func (s *DaySet) UnmarshalJSON(data []byte) error {
	var symbols []string
	if err := json.Unmarshal(data, &symbols); err != nil {
		return err
	}
	var set DaySet
	for _, sym := range symbols {
		r := []rune(sym)
		if len(r) != 1 {
			return fmt.Errorf("invalid day symbol %q", sym)
		}
		d, ok := ParseDay(r[0])
		if !ok {
			return fmt.Errorf("invalid day symbol %q", sym)
		}
		set = set.Add(d)
	}
	*s = set
	return nil
}

// MarshalYAML encodes the set as a sequence of day symbols.
func (s DaySet) MarshalYAML() (interface{}, error) {
	return s.symbols(), nil
}
