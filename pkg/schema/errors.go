package schema

import (
	"errors"
	"fmt"
)

// ErrNodeNotFound is returned when an id cannot be resolved in an Index.
var ErrNodeNotFound = errors.New("schema: node not found")

// Error reports an invalid schema tree (nil root, nil child, empty id).
// It is fatal: schema problems are programmer errors, never user input.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "schema: " + e.Reason
}

// DuplicateIDError reports two nodes sharing one id. Construction fails
// fast instead of silently keeping the last node seen.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("schema: duplicate node id %q", e.ID)
}
