package axis

import (
	"fmt"

	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/errs"
)

// Range is the numeric domain of an axis scale.
type Range struct {
	Min float64
	Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// Padding holds the multiplicative factors applied to a column's extremes.
// The lower bound of a range is min(v)*Min and the upper bound max(v)*Max.
type Padding struct {
	XMin float64 `json:"x_min"`
	XMax float64 `json:"x_max"`
	YMin float64 `json:"y_min"`
	YMax float64 `json:"y_max"`
}

// DefaultPadding returns the factors of the interactive chart: X 0.9/1.1, Y 0.75/1.1.
func DefaultPadding() Padding {
	return Padding{XMin: 0.9, XMax: 1.1, YMin: 0.75, YMax: 1.1}
}

// StaticPadding returns the factors of the fixed-axis charts: X 0.9/1.1, Y 0.6/1.1.
func StaticPadding() Padding {
	return Padding{XMin: 0.9, XMax: 1.1, YMin: 0.6, YMax: 1.1}
}

// Validate checks that every factor is positive and each min factor is at most its max.
func (p Padding) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"x_min", p.XMin}, {"x_max", p.XMax}, {"y_min", p.YMin}, {"y_max", p.YMax},
	} {
		if !(f.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %g", errs.ErrInvalidPadding, f.name, f.v)
		}
	}
	if p.XMin > p.XMax {
		return fmt.Errorf("%w: x_min %g exceeds x_max %g", errs.ErrInvalidPadding, p.XMin, p.XMax)
	}
	if p.YMin > p.YMax {
		return fmt.Errorf("%w: y_min %g exceeds y_max %g", errs.ErrInvalidPadding, p.YMin, p.YMax)
	}

	return nil
}

// For returns the (min, max) factors of axis a.
func (p Padding) For(a Axis) (padMin, padMax float64) {
	if a == Y {
		return p.YMin, p.YMax
	}

	return p.XMin, p.XMax
}

// ComputeRange returns [min(values)*padMin, max(values)*padMax].
//
// Returns errs.ErrEmptyDataset for no values and errs.ErrInvalidPadding for
// factors that are not positive.
func ComputeRange(values []float64, padMin, padMax float64) (Range, error) {
	if len(values) == 0 {
		return Range{}, errs.ErrEmptyDataset
	}
	if !(padMin > 0) || !(padMax > 0) {
		return Range{}, fmt.Errorf("%w: factors %g/%g", errs.ErrInvalidPadding, padMin, padMax)
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	return Range{Min: lo * padMin, Max: hi * padMax}, nil
}

// Range computes the padded range of metric m on axis a.
func (p Padding) Range(ds *dataset.Dataset, a Axis, m dataset.Metric) (Range, error) {
	if ds == nil {
		return Range{}, errs.ErrEmptyDataset
	}

	col, err := ds.Column(m)
	if err != nil {
		return Range{}, err
	}
	padMin, padMax := p.For(a)

	return ComputeRange(col, padMin, padMax)
}

// Ranges computes the padded X and Y ranges for sel.
func (p Padding) Ranges(ds *dataset.Dataset, sel Selection) (x, y Range, err error) {
	if x, err = p.Range(ds, X, sel.X); err != nil {
		return Range{}, Range{}, err
	}
	if y, err = p.Range(ds, Y, sel.Y); err != nil {
		return Range{}, Range{}, err
	}

	return x, y, nil
}
