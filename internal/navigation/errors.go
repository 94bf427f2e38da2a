package navigation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no route matches a path or name.
	ErrNotFound = errors.New("route not found")

	// ErrUnresolvedReference is wrapped by UnresolvedReferenceError.
	ErrUnresolvedReference = errors.New("unresolved view reference")
)

type DuplicatePathError struct {
	Path        string
	First, Next string
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("duplicate route path %q (routes %q and %q)", e.Path, e.First, e.Next)
}

type DuplicateNameError struct {
	Name string
	Path string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate route name %q (path %q)", e.Name, e.Path)
}

// InvalidNameError is returned for a route without a name.
type InvalidNameError struct {
	Route Route
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("route with path %q has no name", e.Route.Path)
}

type InvalidPathError struct {
	Route Route
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("route %q: path %q must be a literal starting with / outside the reserved server paths", e.Route.Name, e.Route.Path)
}

// UnresolvedReferenceError lists every route whose view cannot be rendered.
type UnresolvedReferenceError struct {
	Routes []Route
}

func (e *UnresolvedReferenceError) Error() string {
	parts := make([]string, 0, len(e.Routes))
	for _, r := range e.Routes {
		parts = append(parts, fmt.Sprintf("%s (%s -> %s)", r.Path, r.Name, r.View))
	}
	return fmt.Sprintf("%s: %s", ErrUnresolvedReference, strings.Join(parts, ", "))
}

func (e *UnresolvedReferenceError) Unwrap() error {
	return ErrUnresolvedReference
}
