package regression

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeLinear represents the straight line: y = intercept + slope * x
	ModelTypeLinear ModelType = iota
)

var modelTypeNames = map[ModelType]string{
	ModelTypeLinear: "linear",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// Estimator predicts y for a given x from fitted coefficients.
type Estimator interface {
	// Estimate returns the predicted y for x.
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
}

// LinearEstimator implements y = intercept + slope * x.
type LinearEstimator struct {
	intercept, slope float64
}

var _ Estimator = (*LinearEstimator)(nil)

// NewLinearEstimator creates a linear estimator with the given coefficients.
func NewLinearEstimator(intercept, slope float64) *LinearEstimator {
	return &LinearEstimator{intercept: intercept, slope: slope}
}

// Estimate returns intercept + slope * x.
func (l *LinearEstimator) Estimate(x float64) float64 {
	return l.intercept + l.slope*x
}

// Type returns ModelTypeLinear.
func (l *LinearEstimator) Type() ModelType {
	return ModelTypeLinear
}
