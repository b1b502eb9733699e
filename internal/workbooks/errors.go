package workbooks

import "errors"

var (
	// ErrNotFound means no workbook matches the given id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput covers bad upload input (missing file, wrong type,
	// unparseable workbook).
	ErrInvalidInput = errors.New("invalid input")
)
