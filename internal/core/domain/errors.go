package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file format no extractor handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrScanInProgress indicates a scan is already running.
	ErrScanInProgress = errors.New("scan in progress")

	// ErrInvalidThreshold indicates a match threshold outside the
	// accepted range.
	ErrInvalidThreshold = errors.New("invalid threshold")
)
