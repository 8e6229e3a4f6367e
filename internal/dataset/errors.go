package dataset

import (
	"fmt"
	"strings"
)

// SchemaError rejects a load whose header row lacks required columns.
// Missing preserves the required-set order, not the input order.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing required columns: " + strings.Join(e.Missing, ", ")
}

// ParseError wraps a file-level CSV fault. Fatal to the load.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "csv parse failed: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// RowProcessingError reports an unexpected fault while normalizing one row.
// Row is the 1-based display number (source index + 2, counting the header).
type RowProcessingError struct {
	Row int
	Err error
}

func (e *RowProcessingError) Error() string {
	return fmt.Sprintf("failed to process row %d: %v", e.Row, e.Err)
}
func (e *RowProcessingError) Unwrap() error { return e.Err }
