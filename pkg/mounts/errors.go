package mounts

import "errors"

var (
	// ErrNotFound is returned when a path is not under any recorded mount point.
	ErrNotFound = errors.New("can't find mount entry")
)
