package btree

import "errors"

var (
	// ErrEmptyTree is returned by Delete and Search when called against
	// a tree with no root.
	ErrEmptyTree = errors.New("btree: tree is empty")

	// ErrKeyNotFound is returned when a descent bottoms out without
	// locating the requested key, and together with ErrEmptyTree by
	// Search on an empty tree.
	ErrKeyNotFound = errors.New("btree: key not found")

	// ErrInvalidOrder is returned by New when m < 3.
	ErrInvalidOrder = errors.New("btree: invalid order")
)
