// Package healthplot renders scatter plots of U.S. state public-health survey
// data and overlays an ordinary-least-squares regression line on demand.
//
// # Core Features
//
//   - CSV loading with optional Zstd, S2 or LZ4 compression
//   - Axis selection over poverty, age and income (X) and healthcare, smokes and obesity (Y)
//   - Padded axis ranges driven by configurable profiles
//   - OLS regression with R², RMSE and a degenerate-fit signal
//   - SVG/PNG (go-chart), terminal (ntcharts) and JSON renderers
//
// # Basic Usage
//
//	ds, _ := healthplot.LoadDataset("data.csv")
//
//	s, _ := healthplot.NewInteractiveSession(ds)
//	s.SetRegression(true)
//	s.SelectX(dataset.Age)
//
//	r, _ := svgchart.New()
//	f, _ := os.Create("chart.svg")
//	s.Render(f, r)
//
// Fitting two columns directly:
//
//	res, err := healthplot.Fit(ds, dataset.Poverty, dataset.Healthcare)
//	if errors.Is(err, errs.ErrDegenerateFit) {
//	    // every x is identical
//	}
//	fmt.Println(res.Formula, regression.FormatRSquared(res.RSquared))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the dataset,
// chart and regression packages. For fine-grained control use those packages
// directly.
package healthplot

import (
	"github.com/arloliu/healthplot/chart"
	"github.com/arloliu/healthplot/config"
	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/internal/hash"
	"github.com/arloliu/healthplot/regression"
)

// LoadDataset reads a dataset file. The codec is chosen from the file suffix.
func LoadDataset(path string, opts ...dataset.LoadOption) (*dataset.Dataset, error) {
	return dataset.LoadFile(path, opts...)
}

// NewSession creates a chart session with the named built-in profile.
// An empty name selects the interactive profile.
func NewSession(ds *dataset.Dataset, profile string, opts ...chart.SessionOption) (*chart.Session, error) {
	p, err := config.Default().Profile(profile)
	if err != nil {
		return nil, err
	}

	return chart.NewSession(ds, p, opts...)
}

// NewInteractiveSession creates a session that allows axis switching and the
// regression toggle.
func NewInteractiveSession(ds *dataset.Dataset, opts ...chart.SessionOption) (*chart.Session, error) {
	return NewSession(ds, config.ProfileInteractive, opts...)
}

// Fit computes the OLS regression of y against x.
func Fit(ds *dataset.Dataset, x, y dataset.Metric) (*regression.Result, error) {
	return regression.Compute(ds, x, y)
}

// StateID returns the 64-bit identifier of a state abbreviation.
// Case and surrounding space are ignored.
func StateID(abbr string) uint64 {
	return hash.StateID(abbr)
}
