// Package output serializes extraction results.
package output

import (
	"encoding/json"
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/ukaji3/schedgrid-go/pkg/schedgrid/models"
	"gopkg.in/yaml.v3"
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCSV  Format = "csv"
)

// ToJSON serializes v to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// ToYAML serializes v to YAML.
func ToYAML(v interface{}) ([]byte, error) {
	return yaml.Marshal(v)
}

// EntryCSVRow is one schedule entry flattened for CSV export.
type EntryCSVRow struct {
	Record      int    `csv:"record"`
	Section     string `csv:"section"`
	Days        string `csv:"days"`
	Room        string `csv:"room"`
	StartMinute int    `csv:"start_minute"`
	EndMinute   int    `csv:"end_minute"`
	StartClock  string `csv:"start_clock"`
	EndClock    string `csv:"end_clock"`
}

// FlattenRecords produces one CSV row per schedule entry, in record order.
func FlattenRecords(records []models.ClassRecord) []*EntryCSVRow {
	var rows []*EntryCSVRow
	for i, rec := range records {
		for _, e := range rec.Schedule {
			rows = append(rows, &EntryCSVRow{
				Record:      i + 1,
				Section:     rec.Section,
				Days:        e.Days.String(),
				Room:        e.Room,
				StartMinute: e.StartMinute,
				EndMinute:   e.EndMinute,
				StartClock:  models.MinuteToClock(e.StartMinute),
				EndClock:    models.MinuteToClock(e.EndMinute),
			})
		}
	}
	return rows
}

// RecordsToCSV writes the records as CSV with a header line.
func RecordsToCSV(records []models.ClassRecord) ([]byte, error) {
	rows := FlattenRecords(records)
	if rows == nil {
		rows = []*EntryCSVRow{}
	}
	str, err := gocsv.MarshalString(&rows)
	if err != nil {
		return nil, err
	}
	return []byte(str), nil
}

// Encode serializes a timetable in the given format. CSV output only
// carries the records.
func Encode(tt *models.Timetable, format Format, pretty bool) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return ToJSON(tt, pretty)
	case FormatYAML:
		return ToYAML(tt)
	case FormatCSV:
		return RecordsToCSV(tt.Records)
	}
	return nil, fmt.Errorf("unknown output format: %s", format)
}
