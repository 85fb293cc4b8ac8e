package filtering

import (
	"errors"
	"fmt"
)

var (
	// ErrLookupFailed marks a store failure while reading a join table.
	ErrLookupFailed = errors.New("association lookup failed")
	// ErrUnknownKind is returned for target kinds the registry does not describe.
	ErrUnknownKind = errors.New("unknown entity kind")
	// ErrInvalidIdentifier is returned when a facet value is not a positive integer.
	ErrInvalidIdentifier = errors.New("invalid facet identifier")
)

// LookupError carries the facet and target of a failed association read.
type LookupError struct {
	Registry string
	Target   string
	Facet    Facet
	Table    string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("resolve %s/%s: lookup %s via %s: %v", e.Registry, e.Target, e.Facet, e.Table, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

func (e *LookupError) Is(target error) bool { return target == ErrLookupFailed }
