package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/healthplot/errs"
	"github.com/arloliu/healthplot/internal/collision"
)

// Dataset is an ordered, immutable sequence of observations.
//
// A Dataset never changes after construction, and every accessor returns a copy,
// so one value can be shared by the session and any renderer.
type Dataset struct {
	obs          []Observation
	index        map[uint64]int // observation ID → row
	hasCollision bool           // two abbreviations share an ID; Lookup compares names
}

// New validates observations and builds a Dataset from a copy of them.
//
// Every metric must be finite and non-negative, and abbreviations must be
// non-empty and unique (case-insensitive). Violations are reported as
// *errs.DataLoadError with the 1-based row number in Line.
func New(observations []Observation) (*Dataset, error) {
	tracker := collision.NewTracker()
	ds := &Dataset{
		obs:   make([]Observation, len(observations)),
		index: make(map[uint64]int, len(observations)),
	}

	for i, o := range observations {
		o.Abbr = strings.TrimSpace(o.Abbr)
		o.State = strings.TrimSpace(o.State)

		if err := o.validate(); err != nil {
			return nil, &errs.DataLoadError{Line: i + 1, Err: err}
		}

		id := o.ID()
		if err := tracker.Track(strings.ToUpper(o.Abbr), id); err != nil {
			return nil, &errs.DataLoadError{Line: i + 1, Column: "abbr", Err: fmt.Errorf("%w: %q", err, o.Abbr)}
		}

		ds.obs[i] = o
		if _, exists := ds.index[id]; !exists {
			ds.index[id] = i
		}
	}
	ds.hasCollision = tracker.HasCollision()

	return ds, nil
}

// Len returns the number of observations.
func (d *Dataset) Len() int {
	return len(d.obs)
}

// At returns the observation at row i. It panics if i is out of range.
func (d *Dataset) At(i int) Observation {
	return d.obs[i]
}

// Observations returns a copy of all observations in load order.
func (d *Dataset) Observations() []Observation {
	out := make([]Observation, len(d.obs))
	copy(out, d.obs)

	return out
}

// Column returns the values of metric m in load order.
func (d *Dataset) Column(m Metric) ([]float64, error) {
	if !m.Valid() {
		return nil, &errs.InvalidDimensionError{Name: m.String()}
	}

	col := make([]float64, len(d.obs))
	for i, o := range d.obs {
		col[i] = o.Value(m)
	}

	return col, nil
}

// Extent returns the minimum and maximum of metric m.
func (d *Dataset) Extent(m Metric) (lo, hi float64, err error) {
	if !m.Valid() {
		return 0, 0, &errs.InvalidDimensionError{Name: m.String()}
	}
	if len(d.obs) == 0 {
		return 0, 0, errs.ErrEmptyDataset
	}

	lo, hi = math.Inf(1), math.Inf(-1)
	for _, o := range d.obs {
		v := o.Value(m)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi, nil
}

// Lookup returns the observation with the given state abbreviation (case-insensitive).
func (d *Dataset) Lookup(abbr string) (Observation, bool) {
	norm := strings.ToUpper(strings.TrimSpace(abbr))
	if d.hasCollision {
		for _, o := range d.obs {
			if strings.ToUpper(o.Abbr) == norm {
				return o, true
			}
		}

		return Observation{}, false
	}

	i, ok := d.index[Observation{Abbr: norm}.ID()]
	if !ok {
		return Observation{}, false
	}

	return d.obs[i], true
}
