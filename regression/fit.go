package regression

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/errs"
)

// Compute fits y against x over every observation in ds.
//
// Parameters:
//   - ds: Non-empty dataset
//   - x: Independent metric (any of the six metrics)
//   - y: Dependent metric, may equal x
//
// Returns:
//   - *Result: Fitted line, R², RMSE and one predicted point per observation
//   - error: errs.ErrEmptyDataset, *errs.InvalidDimensionError or *errs.DegenerateFitError
func Compute(ds *dataset.Dataset, x, y dataset.Metric) (*Result, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, errs.ErrEmptyDataset
	}

	xs, err := ds.Column(x)
	if err != nil {
		return nil, err
	}
	ys, err := ds.Column(y)
	if err != nil {
		return nil, err
	}

	res, err := fit(xs, ys, x.String(), y.String())
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Fit fits ys against xs. Both slices must be non-empty and of equal length.
// The inputs are not modified.
func Fit(xs, ys []float64) (*Result, error) {
	if len(xs) == 0 {
		return nil, errs.ErrEmptyDataset
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("mismatched data lengths: %d x vs %d y", len(xs), len(ys))
	}

	return fit(xs, ys, "", "")
}

func fit(xs, ys []float64, xName, yName string) (*Result, error) {
	n := len(xs)
	// Constant columns are detected on the raw values: a mean of non-dyadic
	// values can differ from each of them by a few ULPs.
	if slices.Min(xs) == slices.Max(xs) {
		return nil, &errs.DegenerateFitError{X: xName, N: n}
	}
	constY := slices.Min(ys) == slices.Max(ys)

	meanX := stat.Mean(xs, nil)
	meanY := stat.Mean(ys, nil)

	var sxy, sxx float64
	for i := range n {
		dx := xs[i] - meanX
		sxy += dx * (ys[i] - meanY)
		sxx += dx * dx
	}
	if sxx == 0 {
		return nil, &errs.DegenerateFitError{X: xName, N: n}
	}

	slope := sxy / sxx
	if constY {
		slope = 0
		meanY = ys[0]
	}
	intercept := meanY - slope*meanX

	points := make([]Point, n)
	var ssReg, ssTot, ssRes float64
	for i := range n {
		pred := intercept + slope*xs[i]
		points[i] = Point{X: xs[i], Y: ys[i], Predicted: pred}

		ssReg += (pred - meanY) * (pred - meanY)
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
		ssRes += (ys[i] - pred) * (ys[i] - pred)
	}

	r2 := math.NaN()
	if !constY && ssTot != 0 {
		r2 = ssReg / ssTot
	}

	return &Result{
		X:         xName,
		Y:         yName,
		N:         n,
		MeanX:     meanX,
		MeanY:     meanY,
		Slope:     slope,
		Intercept: intercept,
		RSquared:  r2,
		RMSE:      math.Sqrt(ssRes / float64(n)),
		Points:    points,
		Formula:   formula(xName, yName, intercept, slope),
		Estimator: NewLinearEstimator(intercept, slope),
	}, nil
}
