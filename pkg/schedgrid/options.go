// Package schedgrid extracts class schedules from tabular grids and lays them
// out on a weekly timeline.
package schedgrid

import "github.com/rs/zerolog"

// Source identifies the kind of document holding the schedule grid.
type Source string

const (
	// SourceAuto picks a source from the file extension.
	SourceAuto Source = "auto"
	// SourceHTML reads the grid from an HTML table.
	SourceHTML Source = "html"
	// SourceXLSX reads the grid from a worksheet.
	SourceXLSX Source = "xlsx"
	// SourceCSV reads the grid from comma-separated text.
	SourceCSV Source = "csv"
)

// ParseSource maps a name to a Source. The empty string means SourceAuto.
func ParseSource(name string) (Source, error) {
	switch Source(name) {
	case "", SourceAuto:
		return SourceAuto, nil
	case SourceHTML, SourceXLSX, SourceCSV:
		return Source(name), nil
	}
	return "", ErrInvalidFormat
}

// Options configures extraction behavior.
type Options struct {
	// Source selects the input kind. SourceAuto (or empty) uses the file extension.
	Source Source
	// Sheet is the worksheet to read for xlsx input. Empty means the active sheet.
	Sheet string
	// TableSelector is the CSS selector of the schedule table for html input.
	// Empty means parser.DefaultTableSelector.
	TableSelector string
	// Logger receives parse diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Source: SourceAuto,
	}
}

func (o Options) logger() zerolog.Logger {
	if o.Logger != nil {
		return *o.Logger
	}
	return zerolog.Nop()
}
