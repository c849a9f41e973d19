// Package models defines data structures for schedule extraction and layout.
package models

// ParseReport counts what the grid parser did with each row.
type ParseReport struct {
	// Rows is the number of rows after the header.
	Rows int `json:"rows" yaml:"rows"`
	// IgnoredRows had a cell count other than the schema width.
	IgnoredRows int `json:"ignored_rows" yaml:"ignored_rows"`
	// Records is the number of finalized records.
	Records int `json:"records" yaml:"records"`
	// InvalidRecords started a record but had an unusable day field.
	InvalidRecords int `json:"invalid_records" yaml:"invalid_records"`
	// SkippedRows are continuation rows of invalid records.
	SkippedRows int `json:"skipped_rows" yaml:"skipped_rows"`
	// OrphanRows are continuation rows seen before any valid record.
	OrphanRows int `json:"orphan_rows" yaml:"orphan_rows"`
	// DroppedEntries are continuation rows whose day field could not be decoded.
	DroppedEntries int `json:"dropped_entries" yaml:"dropped_entries"`
}

// Timetable is the top-level extraction result.
type Timetable struct {
	// Source names the input (file name, or empty for in-memory grids).
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Records are the parsed class records in grid order.
	Records []ClassRecord `json:"records" yaml:"records"`
	// Days holds one layout per weekday, M through S. Empty when no records were parsed.
	Days []DayLayout `json:"days,omitempty" yaml:"days,omitempty"`
	// Report summarizes the parse.
	Report ParseReport `json:"report" yaml:"report"`
}

// Day returns the layout for d, or nil if the timetable has none.
func (t *Timetable) Day(d Day) *DayLayout {
	for i := range t.Days {
		if t.Days[i].Day == d {
			return &t.Days[i]
		}
	}
	return nil
}
