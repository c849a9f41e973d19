package schedgrid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/schedgrid-go/pkg/schedgrid/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input kind is not supported.
var ErrInvalidFormat = errors.New("unsupported input format")

// ErrTableNotFound indicates the HTML document has no schedule table.
var ErrTableNotFound = parser.ErrTableNotFound

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ExtractionError represents an error while reading a grid source.
type ExtractionError struct {
	Source    string
	Component string // "open", "html", "xlsx", "csv"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %q (%s): %v", e.Source, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(source, component string, err error) *ExtractionError {
	return &ExtractionError{
		Source:    source,
		Component: component,
		Err:       err,
	}
}
