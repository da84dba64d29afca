package tabular

import "errors"

// Common reader errors
var (
	// ErrEmptyFile is returned when the uploaded file is empty
	ErrEmptyFile = errors.New("file is empty")

	// ErrInvalidEncoding is returned when the file is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid file encoding")

	// ErrMissingHeader is returned when the file has no header row
	ErrMissingHeader = errors.New("file missing header row")
)
