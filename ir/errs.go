package ir

import "errors"

var (
	// ErrType is returned when a node is used as a kind it doesn't have,
	// for example calling ToInt on an object. It indicates a caller bug.
	ErrType = errors.New("node used as the wrong type")

	// ErrNotFound is returned by lookups for names or indices that do not
	// exist in the container.
	ErrNotFound = errors.New("node not found")
)
