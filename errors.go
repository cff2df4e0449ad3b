package icd

import (
	"errors"
	"fmt"
)

// ErrUnknownSubset is returned when a subset identifier is not one of
// the four known values.
var ErrUnknownSubset = errors.New("unknown subset")

// ErrSampleCountExceeded is returned when a requested sample count is
// larger than the target subset.
var ErrSampleCountExceeded = errors.New("sample count exceeds subset size")

// ErrNegativeSampleCount is returned when a requested sample count is
// negative.
var ErrNegativeSampleCount = errors.New("negative sample count")

// MalformedLineError reports a catalog source line without the required
// code/description delimiter. It is fatal: Load fails rather than build
// a partial catalog.
type MalformedLineError struct {
	// Subset is the subset whose source contained the line
	Subset Subset

	// Line is the 1-based line number within the subset source
	Line int

	// Text is the offending line
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("%s: line %d: missing comma delimiter in %q", e.Subset, e.Line, e.Text)
}

// SourceError reports that a subset's source text could not be
// retrieved. It is fatal at load time.
type SourceError struct {
	// Subset is the subset whose source failed
	Subset Subset

	// Err is the underlying cause
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: source unavailable: %v", e.Subset, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SourceError) Unwrap() error {
	return e.Err
}
