package org

import "errors"

var (
	ErrNotFound        = errors.New("organization not found")
	ErrConflict        = errors.New("organization name already in use")
	ErrInvalidArgument = errors.New("invalid organization data")
)
