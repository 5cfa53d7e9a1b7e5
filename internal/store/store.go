// Package store holds the in-memory user and place collections. Both stores
// keep records in insertion order and are safe for concurrent use; each
// mutation runs under the store's write lock so that check-then-act
// sequences (duplicate detection, find-then-replace) are atomic.
package store

import "errors"

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when creating a record whose id is taken.
	ErrDuplicateID = errors.New("record id already exists")
)
