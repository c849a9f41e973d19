package schedgrid

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/schedgrid-go/pkg/schedgrid/models"
	"github.com/xuri/excelize/v2"
)

var sampleGrid = [][]string{
	{"No", "Course", "Section", "Days", "Time", "Room", "Cap", "Enrolled", "Remarks"},
	{"1", "CS101", "A", "MW", "0900 - 1030", "101", "40", "38", ""},
	{"", "", "", "F", "1300 - 1400", "102", "", "", ""},
	{"SMITH, JOHN"},
	{"2", "CS102", "B", "M", "0900 - 1030", "201", "40", "12", ""},
}

const sampleCSV = "No,Course,Section,Days,Time,Room,Cap,Enrolled,Remarks\n" +
	"1,CS101,A,MW,0900 - 1030,101,40,38,\n" +
	",,,F,1300 - 1400,102,,,\n" +
	"SMITH JOHN\n" +
	"2,CS102,B,M,0900 - 1030,201,40,12,\n"

func TestBuild(t *testing.T) {
	tt := Build(sampleGrid, DefaultOptions())

	if len(tt.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(tt.Records))
	}
	if tt.Report.IgnoredRows != 1 {
		t.Errorf("Expected 1 ignored row, got %d", tt.Report.IgnoredRows)
	}
	if len(tt.Days) != 6 {
		t.Fatalf("Expected 6 day layouts, got %d", len(tt.Days))
	}

	mon := tt.Day(models.Monday)
	if mon == nil || len(mon.Blocks) != 1 {
		t.Fatalf("Expected 1 Monday block, got %+v", mon)
	}
	if got := strings.Join(mon.Blocks[0].Members, ","); got != "A,B" {
		t.Errorf("Expected Monday members A,B, got %s", got)
	}

	fri := tt.Day(models.Friday)
	if fri == nil || len(fri.Blocks) != 1 || fri.Blocks[0].Start != 330 || fri.Blocks[0].End != 390 {
		t.Errorf("Unexpected Friday layout: %+v", fri)
	}
}

func TestBuildNoRecords(t *testing.T) {
	tt := Build(sampleGrid[:1], Options{})
	if tt.Records == nil || len(tt.Records) != 0 {
		t.Errorf("Expected empty non-nil records, got %v", tt.Records)
	}
	if tt.Days != nil {
		t.Errorf("Expected no layout, got %v", tt.Days)
	}
}

func TestExtractCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "offerings.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}

	tt, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if tt.Source != "offerings.csv" {
		t.Errorf("Expected source 'offerings.csv', got %q", tt.Source)
	}
	if len(tt.Records) != 2 || len(tt.Records[0].Schedule) != 2 {
		t.Errorf("Unexpected records: %+v", tt.Records)
	}
}

func TestExtractXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range sampleGrid {
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Sheet1", cell, &values); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	if err := f.MergeCell("Sheet1", "A4", "I4"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "offerings.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	tt, err := Extract(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if len(tt.Records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(tt.Records))
	}
	if tt.Report.IgnoredRows != 1 {
		t.Errorf("Expected merged professor row to be ignored, got %+v", tt.Report)
	}

	_, err = Extract(path, Options{Sheet: "Missing"})
	if !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound, got %v", err)
	}
	var extractErr *ExtractionError
	if !errors.As(err, &extractErr) || extractErr.Component != "xlsx" {
		t.Errorf("Expected xlsx ExtractionError, got %v", err)
	}
}

func TestExtractErrors(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "offerings.txt")
	if err := os.WriteFile(txt, []byte(sampleCSV), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		opts     Options
		expected error
	}{
		{"missing file", filepath.Join(dir, "nope.csv"), Options{}, ErrFileNotFound},
		{"unknown extension", txt, Options{}, ErrInvalidFormat},
		{"unknown source", txt, Options{Source: "pdf"}, ErrInvalidFormat},
	}

	for _, tt := range tests {
		_, err := Extract(tt.path, tt.opts)
		if !errors.Is(err, tt.expected) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, err)
		}
	}

	// An explicit source overrides the extension.
	tt, err := Extract(txt, Options{Source: SourceCSV})
	if err != nil {
		t.Fatalf("Extract with explicit source failed: %v", err)
	}
	if len(tt.Records) != 2 {
		t.Errorf("Expected 2 records, got %d", len(tt.Records))
	}
}

func TestExtractReader(t *testing.T) {
	page := `<table><tr><td>No</td></tr>
<tr><td>1</td><td>CS101</td><td>A</td><td>TH</td><td>1000 - 1130</td><td>301</td><td>40</td><td>1</td><td></td></tr>
</table>`

	tt, err := ExtractReader(strings.NewReader(page), SourceHTML, Options{TableSelector: "table"})
	if err != nil {
		t.Fatalf("ExtractReader failed: %v", err)
	}
	if len(tt.Records) != 1 || tt.Records[0].Section != "A" {
		t.Fatalf("Unexpected records: %+v", tt.Records)
	}
	thu := tt.Day(models.Thursday)
	if thu == nil || len(thu.Blocks) != 1 || thu.Blocks[0].StartClock != "10:00" {
		t.Errorf("Unexpected Thursday layout: %+v", thu)
	}

	_, err = ExtractReader(strings.NewReader(page), SourceHTML, Options{TableSelector: "table.missing"})
	if !errors.Is(err, ErrTableNotFound) {
		t.Errorf("Expected ErrTableNotFound, got %v", err)
	}

	_, err = ExtractReader(strings.NewReader(""), SourceXLSX, Options{})
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got %v", err)
	}
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		input    string
		expected Source
		err      error
	}{
		{"", SourceAuto, nil},
		{"auto", SourceAuto, nil},
		{"xlsx", SourceXLSX, nil},
		{"pdf", "", ErrInvalidFormat},
	}

	for _, tt := range tests {
		result, err := ParseSource(tt.input)
		if result != tt.expected || !errors.Is(err, tt.err) {
			t.Errorf("ParseSource(%q) = (%q, %v), expected (%q, %v)", tt.input, result, err, tt.expected, tt.err)
		}
	}
}

func TestExtractionError(t *testing.T) {
	inner := errors.New("boom")
	err := NewExtractionError("a.csv", "csv", inner)

	if !errors.Is(err, inner) {
		t.Error("Expected ExtractionError to unwrap to its cause")
	}
	expected := `extraction error in "a.csv" (csv): boom`
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}
}
