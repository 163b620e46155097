package highlight

import (
	"errors"
	"fmt"
)

var (
	// ErrNilRoot is returned when no tree is given.
	ErrNilRoot = errors.New("highlight: nil root")
	// ErrInvalidLabel is returned for an empty label or one that is not a
	// single class name.
	ErrInvalidLabel = errors.New("highlight: label must be a single non-empty class name")
)

// BoundaryError reports a labeled element that cannot be unwrapped because
// it does not have the shape Mark produces. The element is left in place.
type BoundaryError struct {
	Label  string
	Reason string
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("highlight: boundary %q skipped: %s", e.Label, e.Reason)
}
