package dataset

import (
	"fmt"
	"math"

	"github.com/arloliu/healthplot/internal/hash"
)

// Observation is one state's row of survey metrics.
type Observation struct {
	State      string
	Abbr       string
	Poverty    float64
	Age        float64
	Income     float64
	Healthcare float64
	Obesity    float64
	Smokes     float64
}

// ID returns the xxHash64 of the normalized state abbreviation.
func (o Observation) ID() uint64 {
	return hash.StateID(o.Abbr)
}

// Value returns the value of metric m, or NaN if m is not a valid metric.
func (o Observation) Value(m Metric) float64 {
	switch m {
	case Poverty:
		return o.Poverty
	case Age:
		return o.Age
	case Income:
		return o.Income
	case Healthcare:
		return o.Healthcare
	case Obesity:
		return o.Obesity
	case Smokes:
		return o.Smokes
	default:
		return math.NaN()
	}
}

// set assigns v to metric m. It is only used while parsing.
func (o *Observation) set(m Metric, v float64) {
	switch m {
	case Poverty:
		o.Poverty = v
	case Age:
		o.Age = v
	case Income:
		o.Income = v
	case Healthcare:
		o.Healthcare = v
	case Obesity:
		o.Obesity = v
	case Smokes:
		o.Smokes = v
	}
}

// validate checks that every metric is finite and non-negative.
func (o Observation) validate() error {
	for _, m := range Metrics() {
		v := o.Value(m)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%s: %s=%v must be finite and non-negative", o.Abbr, m, v)
		}
	}

	return nil
}
