package person

import "errors"

var (
	ErrNotFound        = errors.New("person not found")
	ErrConflict        = errors.New("email already in use")
	ErrInvalidArgument = errors.New("invalid person data")
)
