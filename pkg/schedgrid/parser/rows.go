// Package parser turns raw schedule grids into class records.
package parser

import "strings"

// Logical columns of a schedule-bearing row.
const (
	ColNumber = iota
	ColCourse
	ColSection
	ColDays
	ColTime
	ColRoom
	ColCap
	ColEnrolled
	ColRemarks

	// SchemaWidth is the cell count of every schedule-bearing row.
	SchemaWidth
)

// RowKind classifies a single grid row.
type RowKind int

const (
	// RowIgnorable rows do not have SchemaWidth cells (professor lines, banners).
	RowIgnorable RowKind = iota
	// RowNewRecord rows carry a record number in the first cell.
	RowNewRecord
	// RowContinuation rows leave the first cell blank and extend the previous record.
	RowContinuation
)

func (k RowKind) String() string {
	switch k {
	case RowNewRecord:
		return "new_record"
	case RowContinuation:
		return "continuation"
	default:
		return "ignorable"
	}
}

// ClassifyRow decides how a row participates in the parse.
func ClassifyRow(cells []string) RowKind {
	if len(cells) != SchemaWidth {
		return RowIgnorable
	}
	if strings.TrimSpace(cells[ColNumber]) != "" {
		return RowNewRecord
	}
	return RowContinuation
}
