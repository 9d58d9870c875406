package service

import "errors"

// ErrNotFound is returned when no task has the requested id.
var ErrNotFound = errors.New("task not found")

// ErrInvalidInput is returned for empty descriptions, unknown filters,
// and other caller mistakes.
var ErrInvalidInput = errors.New("invalid input")
