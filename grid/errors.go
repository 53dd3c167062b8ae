package grid

import "fmt"

// FormatError reports a malformed or internally inconsistent raster file.
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf(" grid: %s: %s", e.Path, e.Reason)
}

// ShapeError reports an invalid grid geometry parameter.
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string { return " grid: " + e.Reason }
