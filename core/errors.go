package core

import "errors"

var (
	// ErrNodeNotFound indicates an operation referenced a node value with no
	// corresponding live node.
	ErrNodeNotFound = errors.New("core: node not found")
	// ErrEdgeNotFound indicates an operation referenced a (from, to) pair with
	// no corresponding live edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
	// ErrNodeExists indicates AddNode was called with a value already keying a
	// live node.
	ErrNodeExists = errors.New("core: node already exists")
	// ErrEdgeExists indicates AddEdge was called for a pair that already has an
	// edge.
	ErrEdgeExists = errors.New("core: edge already exists")
	// ErrBufferTooSmall indicates a caller-supplied buffer cannot hold the
	// neighbor result.
	ErrBufferTooSmall = errors.New("core: neighbor buffer too small")
)
