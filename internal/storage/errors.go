package storage

import "errors"

var (
	// ErrNotFound is returned for a value key that has never been written
	ErrNotFound = errors.New("value not found")
	// ErrNotLoaded is returned when a store is used before Init or Load
	ErrNotLoaded = errors.New("storage not loaded")
	// ErrNotInitialized is returned by Load when nothing exists at the config path
	ErrNotInitialized = errors.New("storage not initialized, run 'nila init' first")
)
