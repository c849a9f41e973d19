package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExtractSheetRows reads a worksheet as a schedule grid.
//
// The grid is cropped to the bounding box of non-empty cells and rows with no
// data are dropped. Cells hidden under a merged range, other than the range's
// top-left cell, are removed from their row, so a row whose cells were merged
// reports fewer cells just as an HTML row with colspan does.
func ExtractSheetRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil
	}

	covered, err := mergedCells(f, sheetName)
	if err != nil {
		return nil, err
	}

	var result [][]string
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		row := rows[rowIdx]
		cells := make([]string, 0, maxCol-minCol+1)
		hasData := false

		for colIdx := minCol; colIdx <= maxCol; colIdx++ {
			if covered[cellKey{rowIdx, colIdx}] {
				continue
			}
			var value string
			if colIdx < len(row) {
				value = strings.TrimSpace(row[colIdx])
			}
			if value != "" {
				hasData = true
			}
			cells = append(cells, value)
		}

		if hasData {
			result = append(result, cells)
		}
	}

	return result, nil
}

// cellKey is a 0-based (row, column) pair.
type cellKey struct {
	row, col int
}

// mergedCells returns every cell hidden under a merged range.
func mergedCells(f *excelize.File, sheetName string) (map[cellKey]bool, error) {
	merges, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	covered := make(map[cellKey]bool)
	for _, mc := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			continue
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			continue
		}
		for r := startRow; r <= endRow; r++ {
			for c := startCol; c <= endCol; c++ {
				if r == startRow && c == startCol {
					continue
				}
				covered[cellKey{r - 1, c - 1}] = true
			}
		}
	}
	return covered, nil
}

// SheetName resolves the sheet to read: the named one if given, else the active sheet.
func SheetName(f *excelize.File, name string) (string, error) {
	if name != "" {
		if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
			return "", ErrSheetNotFound
		}
		return name, nil
	}
	active := f.GetSheetName(f.GetActiveSheetIndex())
	if active == "" {
		return "", ErrSheetNotFound
	}
	return active, nil
}
