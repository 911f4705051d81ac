// Package errs defines the sentinel and typed errors shared by healthplot packages.
//
// Typed errors carry context (file position, axis, metric) and report their
// sentinel through errors.Is, so callers can classify failures without type
// assertions:
//
//	res, err := regression.Compute(ds, dataset.Poverty, dataset.Healthcare)
//	if errors.Is(err, errs.ErrDegenerateFit) {
//	    // suppress the overlay, keep the scatter
//	}
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrDataLoad indicates the input file is missing or malformed.
	ErrDataLoad = errors.New("data load failed")
	// ErrEmptyDataset indicates an operation received a dataset with no observations.
	ErrEmptyDataset = errors.New("dataset is empty")
	// ErrDuplicateObservation indicates two rows share the same state abbreviation.
	ErrDuplicateObservation = errors.New("duplicate observation")
	// ErrUnknownState indicates a state abbreviation that is not in the dataset.
	ErrUnknownState = errors.New("unknown state")
	// ErrInvalidAbbreviation indicates a row has an empty state abbreviation.
	ErrInvalidAbbreviation = errors.New("invalid state abbreviation")
	// ErrDegenerateFit indicates the independent variable has zero variance.
	ErrDegenerateFit = errors.New("degenerate fit: zero variance in x")
	// ErrInvalidDimension indicates a metric outside the closed set for an axis.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrAxisLocked indicates the active profile does not allow switching axes.
	ErrAxisLocked = errors.New("axis switching disabled by profile")
	// ErrRegressionUnavailable indicates the active profile has no regression toggle.
	ErrRegressionUnavailable = errors.New("regression overlay disabled by profile")
	// ErrUnknownProfile indicates a profile name that is not configured.
	ErrUnknownProfile = errors.New("unknown profile")
	// ErrUnsupportedFormat indicates an output or compression format that is not supported.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrInvalidPadding indicates a padding factor that is not positive or a min factor above its max.
	ErrInvalidPadding = errors.New("invalid padding")
)

// DataLoadError describes a fatal failure while reading or parsing the input file.
type DataLoadError struct {
	Path   string // Optional: input file path
	Line   int    // Optional: 1-based CSV line, 0 when not applicable
	Column string // Optional: offending column
	Err    error
}

func (e *DataLoadError) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := ErrDataLoad.Error()
	if e.Path != "" {
		msg += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *DataLoadError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// Is reports ErrDataLoad as the sentinel for every DataLoadError.
func (e *DataLoadError) Is(target error) bool {
	return target == ErrDataLoad
}

// DegenerateFitError reports that a regression slope is undefined because
// every x value is identical (this includes single-observation datasets).
type DegenerateFitError struct {
	X string // name of the independent metric, empty for raw columns
	N int    // number of observations
}

func (e *DegenerateFitError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.X == "" {
		return fmt.Sprintf("%s (n=%d)", ErrDegenerateFit.Error(), e.N)
	}

	return fmt.Sprintf("%s (x=%s, n=%d)", ErrDegenerateFit.Error(), e.X, e.N)
}

func (e *DegenerateFitError) Is(target error) bool {
	return target == ErrDegenerateFit
}

// InvalidDimensionError reports a metric that is not valid for an axis.
// Reaching it from a closed UI surface is a programming error.
type InvalidDimensionError struct {
	Axis string // "x", "y" or empty when the name is not a metric at all
	Name string
}

func (e *InvalidDimensionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Axis == "" {
		return fmt.Sprintf("%s: %q", ErrInvalidDimension.Error(), e.Name)
	}

	return fmt.Sprintf("%s: %q is not a %s-axis metric", ErrInvalidDimension.Error(), e.Name, e.Axis)
}

func (e *InvalidDimensionError) Is(target error) bool {
	return target == ErrInvalidDimension
}
