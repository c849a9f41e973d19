package schedgrid

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/schedgrid-go/pkg/schedgrid/layout"
	"github.com/ukaji3/schedgrid-go/pkg/schedgrid/models"
	"github.com/ukaji3/schedgrid-go/pkg/schedgrid/parser"
	"github.com/xuri/excelize/v2"
)

// Build parses an in-memory grid and lays out its records. The first row is
// the header. When no record survives parsing, Days is left empty.
func Build(rows [][]string, opts Options) *models.Timetable {
	log := opts.logger()

	records, report := parser.ParseRecords(rows, log)
	tt := &models.Timetable{
		Records: records,
		Report:  report,
	}
	if tt.Records == nil {
		tt.Records = []models.ClassRecord{}
	}

	if len(records) == 0 {
		log.Warn().Int("rows", report.Rows).Msg("no class records found")
		return tt
	}

	tt.Days = layout.LayoutWeek(records)
	log.Info().
		Int("records", report.Records).
		Int("invalid", report.InvalidRecords).
		Int("ignored_rows", report.IgnoredRows).
		Msg("schedule parsed")
	return tt
}

// Extract reads a schedule grid from a file and lays it out.
func Extract(path string, opts Options) (*models.Timetable, error) {
	src, err := resolveSource(path, opts.Source)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	switch src {
	case SourceXLSX:
		rows, err = readWorkbook(path, opts.Sheet)
	default:
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, ErrFileNotFound
			}
			return nil, NewExtractionError(path, "open", err)
		}
		defer f.Close()
		rows, err = readStream(f, src, opts)
	}
	if err != nil {
		return nil, NewExtractionError(path, string(src), err)
	}

	tt := Build(rows, opts)
	tt.Source = filepath.Base(path)
	return tt, nil
}

// ExtractReader reads an HTML or CSV grid from r and lays it out.
func ExtractReader(r io.Reader, src Source, opts Options) (*models.Timetable, error) {
	if src != SourceHTML && src != SourceCSV {
		return nil, ErrInvalidFormat
	}
	rows, err := readStream(r, src, opts)
	if err != nil {
		return nil, NewExtractionError("", string(src), err)
	}
	return Build(rows, opts), nil
}

func readStream(r io.Reader, src Source, opts Options) ([][]string, error) {
	switch src {
	case SourceHTML:
		return parser.ExtractHTMLRows(r, opts.TableSelector)
	case SourceCSV:
		return parser.ExtractCSVRows(r)
	}
	return nil, ErrInvalidFormat
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name, err := parser.SheetName(f, sheet)
	if err != nil {
		return nil, err
	}
	return parser.ExtractSheetRows(f, name)
}

// resolveSource picks the grid source for path.
func resolveSource(path string, src Source) (Source, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "", ErrFileNotFound
	}
	switch src {
	case SourceHTML, SourceXLSX, SourceCSV:
		return src, nil
	case "", SourceAuto:
	default:
		return "", ErrInvalidFormat
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return SourceHTML, nil
	case ".xlsx", ".xlsm":
		return SourceXLSX, nil
	case ".csv":
		return SourceCSV, nil
	}
	return "", ErrInvalidFormat
}
