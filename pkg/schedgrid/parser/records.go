package parser

import (
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/ukaji3/schedgrid-go/pkg/schedgrid/models"
)

type stateKind int

const (
	stateIdle stateKind = iota
	stateBuilding
	stateSkipping
)

// state is the parser position between two rows. record is only
// meaningful while building.
type state struct {
	kind   stateKind
	record models.ClassRecord
}

// outcome tells what a step did with its row.
type outcome int

const (
	outcomeIgnored outcome = iota
	outcomeOpened
	outcomeRejected
	outcomeExtended
	outcomeSkipped
	outcomeOrphan
	outcomeDropped
)

// step consumes one row and returns the next state. When the row closes
// an open record, that record is returned as well. The input state is
// never modified.
func step(s state, row []string) (state, *models.ClassRecord, outcome) {
	switch ClassifyRow(row) {
	case RowNewRecord:
		var closed *models.ClassRecord
		if s.kind == stateBuilding {
			rec := s.record
			closed = &rec
		}

		days, err := DecodeDays(cell(row, ColDays))
		if err != nil {
			return state{kind: stateSkipping}, closed, outcomeRejected
		}
		rec := models.ClassRecord{
			Section:  cell(row, ColSection),
			Schedule: []models.ScheduleEntry{entryFor(row, days)},
		}
		return state{kind: stateBuilding, record: rec}, closed, outcomeOpened

	case RowContinuation:
		switch s.kind {
		case stateSkipping:
			return s, nil, outcomeSkipped
		case stateIdle:
			return s, nil, outcomeOrphan
		}
		days, err := DecodeDays(cell(row, ColDays))
		if err != nil {
			return s, nil, outcomeDropped
		}
		rec := s.record
		rec.Schedule = append(slices.Clip(rec.Schedule), entryFor(row, days))
		return state{kind: stateBuilding, record: rec}, nil, outcomeExtended

	default:
		return s, nil, outcomeIgnored
	}
}

// finish flushes the record still open at end of input, if any.
func (s state) finish() *models.ClassRecord {
	if s.kind != stateBuilding {
		return nil
	}
	rec := s.record
	return &rec
}

func entryFor(row []string, days models.DaySet) models.ScheduleEntry {
	start, end := DecodeTimeRange(cell(row, ColTime))
	return models.ScheduleEntry{
		Days:        days,
		Room:        cell(row, ColRoom),
		StartMinute: start,
		EndMinute:   end,
	}
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// ParseRecords scans a schedule grid and returns its class records.
// The first row is the table header and is always discarded. Malformed
// rows never fail the parse; they are counted in the report instead.
func ParseRecords(rows [][]string, log zerolog.Logger) ([]models.ClassRecord, models.ParseReport) {
	var (
		records []models.ClassRecord
		report  models.ParseReport
		st      state
	)
	if len(rows) == 0 {
		return nil, report
	}

	for i, row := range rows[1:] {
		rowNum := i + 1
		report.Rows++

		next, closed, out := step(st, row)
		if closed != nil {
			records = append(records, *closed)
		}

		switch out {
		case outcomeIgnored:
			report.IgnoredRows++
			log.Trace().Int("row", rowNum).Int("cells", len(row)).Msg("ignoring row outside schema")
		case outcomeRejected:
			report.InvalidRecords++
			log.Debug().Int("row", rowNum).Str("number", cell(row, ColNumber)).
				Str("days", cell(row, ColDays)).Msg("skipping record with invalid day field")
		case outcomeSkipped:
			report.SkippedRows++
		case outcomeOrphan:
			report.OrphanRows++
			log.Debug().Int("row", rowNum).Msg("continuation row before any record")
		case outcomeDropped:
			report.DroppedEntries++
			log.Debug().Int("row", rowNum).Str("section", st.record.Section).
				Str("days", cell(row, ColDays)).Msg("dropping entry with invalid day field")
		}
		st = next
	}

	if last := st.finish(); last != nil {
		records = append(records, *last)
	}
	report.Records = len(records)
	return records, report
}
