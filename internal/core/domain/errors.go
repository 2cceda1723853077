package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Processing Errors.

	// ErrUnsupportedFormat indicates a file whose suffix maps to no extractor.
	// The file is skipped; the rest of a batch continues.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrDecode indicates text bytes that are not valid UTF-8.
	ErrDecode = errors.New("decode error")

	// ErrExtractionFailure indicates a corrupt or unreadable PDF or DOCX structure.
	ErrExtractionFailure = errors.New("extraction failure")

	// ErrInvalidPattern indicates a category pattern that does not compile
	// or cannot be applied.
	ErrInvalidPattern = errors.New("invalid pattern")

	// Configuration Errors.

	// ErrInvalidConfig indicates a malformed pattern configuration document.
	// Loading is all-or-nothing: the active registry is left untouched.
	ErrInvalidConfig = errors.New("invalid config")
)
