package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by single-row reads when no row matches the name.
var ErrNotFound = errors.New("not found")

// Init stages reported by InitError.
const (
	StageOpen   = "open"
	StageSchema = "schema"
	StageSeed   = "seed"
)

// InitError reports a failure while building the catalog.
// It is fatal: a Store that failed to initialize is never returned.
type InitError struct {
	Stage string // StageOpen, StageSchema or StageSeed
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("catalog init (%s): %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
