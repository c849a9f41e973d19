package parser

import "testing"

// gridRow builds a schema-width row from its leading cells.
func gridRow(cells ...string) []string {
	row := make([]string, SchemaWidth)
	copy(row, cells)
	return row
}

func TestClassifyRow(t *testing.T) {
	tests := []struct {
		name     string
		cells    []string
		expected RowKind
	}{
		{"new record", gridRow("1", "CS101", "S11", "MW", "0900 - 1030"), RowNewRecord},
		{"padded number", gridRow("  7 ", "CS101"), RowNewRecord},
		{"continuation", gridRow("", "", "", "F", "1300 - 1400"), RowContinuation},
		{"whitespace number", gridRow(" \t", "", "", "F"), RowContinuation},
		{"blank row", gridRow(), RowContinuation},
		{"professor line", []string{"SMITH, JOHN"}, RowIgnorable},
		{"too wide", make([]string, SchemaWidth+1), RowIgnorable},
		{"empty", nil, RowIgnorable},
	}

	for _, tt := range tests {
		result := ClassifyRow(tt.cells)
		if result != tt.expected {
			t.Errorf("%s: ClassifyRow = %v, expected %v", tt.name, result, tt.expected)
		}
	}
}
