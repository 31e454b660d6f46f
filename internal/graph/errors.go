package graph

import "errors"

var (
	// ErrDuplicateNode indicates an AddNode call with an id already in
	// the live set. Node ids must be unique.
	ErrDuplicateNode = errors.New("graph: duplicate node id")

	// ErrEmptyID indicates a node with no id.
	ErrEmptyID = errors.New("graph: empty node id")
)
