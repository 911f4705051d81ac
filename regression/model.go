package regression

import (
	"fmt"
	"math"
)

// Point is one observation together with its fitted value.
type Point struct {
	X         float64
	Y         float64
	Predicted float64
}

// Result is a fitted regression line over one (x, y) metric pair.
//
// A Result is derived data: it is recomputed whenever the axis selection
// changes and is never stored.
type Result struct {
	// X and Y name the fitted metrics. Both are empty for raw-column fits.
	X, Y string
	// N is the number of observations.
	N int
	// MeanX and MeanY are the sample means.
	MeanX, MeanY float64
	// Slope and Intercept define the line y = Intercept + Slope*x.
	Slope, Intercept float64
	// RSquared is Σ(ŷ−ȳ)²/Σ(y−ȳ)², unclamped. NaN when y has zero variance.
	RSquared float64
	// RMSE is the root mean square of the residuals.
	RMSE float64
	// Points holds one entry per observation, in dataset order.
	Points []Point
	// Formula is a human-readable form of the line.
	Formula string
	// Estimator predicts y for arbitrary x.
	Estimator Estimator
}

// Predicted returns the fitted values in dataset order.
func (r *Result) Predicted() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Predicted
	}

	return out
}

// Endpoints returns the fitted points with the smallest and largest x.
// They are enough to draw the line. ok is false for an empty result.
func (r *Result) Endpoints() (lo, hi Point, ok bool) {
	if len(r.Points) == 0 {
		return Point{}, Point{}, false
	}

	lo, hi = r.Points[0], r.Points[0]
	for _, p := range r.Points[1:] {
		if p.X < lo.X {
			lo = p
		}
		if p.X > hi.X {
			hi = p
		}
	}

	return lo, hi, true
}

// String returns a one-line summary of the result.
func (r *Result) String() string {
	if r == nil {
		return "Result{nil}"
	}

	return fmt.Sprintf("Result{N: %d, %s, RMSE: %.4f, Formula: %s}",
		r.N, FormatRSquared(r.RSquared), r.RMSE, r.Formula)
}

// FormatRSquared renders R² with three decimals, e.g. "R² = 0.250".
// A NaN value renders as "R² = n/a".
func FormatRSquared(r2 float64) string {
	if math.IsNaN(r2) {
		return "R² = n/a"
	}

	return fmt.Sprintf("R² = %.3f", r2)
}

func formula(x, y string, intercept, slope float64) string {
	if x == "" {
		x = "x"
	}
	if y == "" {
		y = "y"
	}
	sign := "+"
	if slope < 0 {
		sign = "-"
	}

	return fmt.Sprintf("%s = %.4f %s %.4f * %s", y, intercept, sign, math.Abs(slope), x)
}
