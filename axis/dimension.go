package axis

import (
	"slices"

	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/errs"
)

// Axis identifies one axis of the chart.
type Axis uint8

const (
	X Axis = 0x1 // X is the horizontal axis.
	Y Axis = 0x2 // Y is the vertical axis.
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	default:
		return "unknown"
	}
}

var (
	xDimensions = []dataset.Metric{dataset.Poverty, dataset.Age, dataset.Income}
	yDimensions = []dataset.Metric{dataset.Healthcare, dataset.Smokes, dataset.Obesity}
)

// XDimensions returns the metrics selectable on the X axis, in menu order.
func XDimensions() []dataset.Metric {
	return slices.Clone(xDimensions)
}

// YDimensions returns the metrics selectable on the Y axis, in menu order.
func YDimensions() []dataset.Metric {
	return slices.Clone(yDimensions)
}

// Dimensions returns the selectable metrics for axis a.
func Dimensions(a Axis) []dataset.Metric {
	switch a {
	case X:
		return XDimensions()
	case Y:
		return YDimensions()
	default:
		return nil
	}
}

// Allowed reports whether m may be mapped to axis a.
func Allowed(a Axis, m dataset.Metric) bool {
	switch a {
	case X:
		return slices.Contains(xDimensions, m)
	case Y:
		return slices.Contains(yDimensions, m)
	default:
		return false
	}
}

// Label returns the axis title shown for m, e.g. "In Poverty (%)".
func Label(m dataset.Metric) string {
	return m.Label()
}

// Check returns an *errs.InvalidDimensionError when m is not allowed on axis a.
func Check(a Axis, m dataset.Metric) error {
	if Allowed(a, m) {
		return nil
	}

	return &errs.InvalidDimensionError{Axis: a.String(), Name: m.String()}
}

// Parse resolves a metric name for axis a.
func Parse(a Axis, name string) (dataset.Metric, error) {
	m, err := dataset.ParseMetric(name)
	if err != nil {
		return 0, &errs.InvalidDimensionError{Axis: a.String(), Name: name}
	}
	if err := Check(a, m); err != nil {
		return 0, err
	}

	return m, nil
}
