package parser

import "errors"

// ErrTableNotFound indicates the selector matched no table in the document.
var ErrTableNotFound = errors.New("schedule table not found")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when the grid has no data.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// countRowsOfWidth counts rows that have exactly width cells.
func countRowsOfWidth(rows [][]string, width int) int {
	count := 0
	for _, row := range rows {
		if len(row) == width {
			count++
		}
	}
	return count
}
