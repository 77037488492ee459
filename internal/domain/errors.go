package domain

import "errors"

var (
	// ErrInvalidTarget is returned when an operation references a phase or
	// task index that does not exist.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrEmptyName is returned when a phase or task name is blank.
	ErrEmptyName = errors.New("name is required")
)
