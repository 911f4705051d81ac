package dataset

import (
	"strings"

	"github.com/arloliu/healthplot/errs"
)

// Metric identifies one numeric column of the survey data.
type Metric uint8

const (
	Poverty    Metric = 0x1 // Poverty is the share of residents below the poverty line (%).
	Age        Metric = 0x2 // Age is the median age in years.
	Income     Metric = 0x3 // Income is the median household income (USD).
	Healthcare Metric = 0x4 // Healthcare is the share of residents lacking healthcare (%).
	Obesity    Metric = 0x5 // Obesity is the share of obese residents (%).
	Smokes     Metric = 0x6 // Smokes is the share of residents who smoke (%).
)

var metricNames = map[Metric]string{
	Poverty:    "poverty",
	Age:        "age",
	Income:     "income",
	Healthcare: "healthcare",
	Obesity:    "obesity",
	Smokes:     "smokes",
}

var metricLabels = map[Metric]string{
	Poverty:    "In Poverty (%)",
	Age:        "Age (Median)",
	Income:     "Household Income (Median)",
	Healthcare: "Lacks Healthcare (%)",
	Obesity:    "Obese (%)",
	Smokes:     "Smokes (%)",
}

var metricFromName = map[string]Metric{
	"poverty":    Poverty,
	"age":        Age,
	"income":     Income,
	"healthcare": Healthcare,
	"obesity":    Obesity,
	"smokes":     Smokes,
}

// String returns the canonical column name of the metric.
func (m Metric) String() string {
	if name, ok := metricNames[m]; ok {
		return name
	}

	return "unknown"
}

// Label returns the human-readable axis label of the metric.
func (m Metric) Label() string {
	if label, ok := metricLabels[m]; ok {
		return label
	}

	return "Unknown"
}

// Valid reports whether m is one of the six survey metrics.
func (m Metric) Valid() bool {
	_, ok := metricNames[m]
	return ok
}

// ParseMetric returns the Metric for a column name, ignoring case and surrounding space.
// Unknown names yield an *errs.InvalidDimensionError.
func ParseMetric(name string) (Metric, error) {
	if m, ok := metricFromName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}

	return 0, &errs.InvalidDimensionError{Name: name}
}

// Metrics returns all metrics in CSV column order.
func Metrics() []Metric {
	return []Metric{Poverty, Age, Income, Healthcare, Obesity, Smokes}
}
