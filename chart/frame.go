package chart

import (
	"io"
	"strconv"

	"github.com/arloliu/healthplot/axis"
	"github.com/arloliu/healthplot/config"
	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/regression"
)

// FitFailureMessage is shown instead of the overlay when x has zero variance.
const FitFailureMessage = "regression unavailable: x has zero variance"

// Renderer draws a frame to w.
type Renderer interface {
	Render(w io.Writer, f *Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(w io.Writer, f *Frame) error

func (fn RendererFunc) Render(w io.Writer, f *Frame) error {
	return fn(w, f)
}

// Point is one state marker.
type Point struct {
	Abbr    string
	State   string
	X       float64
	Y       float64
	Tooltip string
}

// Overlay is the drawable part of a regression result.
type Overlay struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	RMSE      float64
	// Label is the formatted R², e.g. "R² = 0.250".
	Label   string
	Formula string
	// From and To are the fitted points at the smallest and largest x.
	From regression.Point
	To   regression.Point
	// Predicted holds one fitted point per marker, in marker order.
	Predicted []regression.Point
}

// Frame is a render snapshot of a session.
type Frame struct {
	Profile   string
	Title     string
	Width     int
	Height    int
	Margin    config.Margin
	Selection axis.Selection
	XLabel    string
	YLabel    string
	XRange    axis.Range
	YRange    axis.Range
	Points    []Point
	// RegressionEnabled reports whether the overlay was requested.
	RegressionEnabled bool
	// Regression is nil when the overlay is disabled or the fit failed.
	Regression *Overlay
	// FitFailure is FitFailureMessage when the fit was degenerate.
	FitFailure string
}

// Tooltip formats the hover text of an observation: "<state>\n<x>: <v>\n<y>: <v>".
func Tooltip(o dataset.Observation, sel axis.Selection) string {
	return o.State + "\n" +
		sel.X.String() + ": " + formatValue(o.Value(sel.X)) + "\n" +
		sel.Y.String() + ": " + formatValue(o.Value(sel.Y))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func newOverlay(res *regression.Result) *Overlay {
	from, to, _ := res.Endpoints()

	return &Overlay{
		Slope:     res.Slope,
		Intercept: res.Intercept,
		RSquared:  res.RSquared,
		RMSE:      res.RMSE,
		Label:     regression.FormatRSquared(res.RSquared),
		Formula:   res.Formula,
		From:      from,
		To:        to,
		Predicted: append([]regression.Point(nil), res.Points...),
	}
}
