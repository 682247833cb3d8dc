package dataset

import "github.com/pkg/errors"

var (
	// ErrFileNotFound is returned when an input path does not exist.
	ErrFileNotFound = errors.New("dataset file not found")
	// ErrParse is returned when an input is not well-formed for its schema.
	ErrParse = errors.New("dataset parse error")
)
