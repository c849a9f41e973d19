// Package layout positions class records on a proportional weekly timeline.
package layout

import "github.com/ukaji3/schedgrid-go/pkg/schedgrid/models"

// DayEntry pairs a record with the entry that places it on a given day.
type DayEntry struct {
	// Index is the record's position in the parsed record list.
	Index int
	// Record is the record itself.
	Record *models.ClassRecord
	// Entry is the schedule entry used for the day.
	Entry models.ScheduleEntry
}

// EntriesForDay returns, in record order, every record meeting on day.
// If a record has several entries on that day, the last one is used.
func EntriesForDay(records []models.ClassRecord, day models.Day) []DayEntry {
	var out []DayEntry
	for i := range records {
		rec := &records[i]
		var (
			entry models.ScheduleEntry
			found bool
		)
		for _, e := range rec.Schedule {
			if !e.Days.Has(day) {
				continue
			}
			entry, found = e, true
		}
		if found {
			out = append(out, DayEntry{Index: i, Record: rec, Entry: entry})
		}
	}
	return out
}
