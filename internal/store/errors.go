package store

import "errors"

var (
	// ErrInvalidFixtures is returned by New when the seed dataset cannot be loaded.
	ErrInvalidFixtures = errors.New("invalid fixtures")
)
