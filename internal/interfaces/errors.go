package interfaces

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is wrapped by every "no such row" error so callers can match
// it without knowing the resource.
var ErrNotFound = errors.New("not found")

// ValidationError is returned when submitted input is rejected before any
// mutation reaches the store. Fields maps the form field to a readable reason.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ReferentialError is returned when a show points at an artist or venue that
// does not exist.
type ReferentialError struct {
	Resource string
	ID       int
}

func (e *ReferentialError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("referenced %s does not exist", e.Resource)
	}
	return fmt.Sprintf("referenced %s %d does not exist", e.Resource, e.ID)
}

// StorageError wraps a failure of the underlying database for operation Op.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
