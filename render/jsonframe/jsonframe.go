// Package jsonframe encodes chart frames as JSON for browser front-ends.
//
// Non-finite numbers (an undefined R²) are encoded as null.
package jsonframe

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/healthplot/chart"
	"github.com/arloliu/healthplot/internal/options"
	"github.com/arloliu/healthplot/internal/pool"
)

// Document is the JSON form of one chart frame.
type Document struct {
	Profile    string      `json:"profile"`
	Title      string      `json:"title,omitempty"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Margin     Margin      `json:"margin"`
	X          Axis        `json:"x"`
	Y          Axis        `json:"y"`
	Points     []Point     `json:"points"`
	Regression *Regression `json:"regression,omitempty"`
	// RegressionEnabled mirrors the state of the overlay checkbox.
	RegressionEnabled bool   `json:"regression_enabled"`
	FitFailure        string `json:"fit_failure,omitempty"`
}

// Margin is the space around the plot area, in pixels.
type Margin struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Axis describes one axis: the selected metric, its label and the padded range.
type Axis struct {
	Metric string  `json:"metric"`
	Label  string  `json:"label"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Point is one observation in the scatter.
type Point struct {
	Abbr    string  `json:"abbr"`
	State   string  `json:"state"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Tooltip string  `json:"tooltip"`
}

// Regression is the fitted line overlay.
//
// Line holds the [x, y] pairs at the smallest and largest x. RSquared is null
// when y has zero variance.
type Regression struct {
	Slope     float64       `json:"slope"`
	Intercept float64       `json:"intercept"`
	RSquared  *float64      `json:"r_squared"`
	RMSE      float64       `json:"rmse"`
	Label     string        `json:"label"`
	Formula   string        `json:"formula"`
	Line      [2][2]float64 `json:"line"`
	Predicted []float64     `json:"predicted"`
}

// NewDocument converts a frame to its JSON form.
func NewDocument(f *chart.Frame) Document {
	doc := Document{
		Profile: f.Profile,
		Title:   f.Title,
		Width:   f.Width,
		Height:  f.Height,
		Margin: Margin{
			Top:    f.Margin.Top,
			Right:  f.Margin.Right,
			Bottom: f.Margin.Bottom,
			Left:   f.Margin.Left,
		},
		X:                 Axis{Metric: f.Selection.X.String(), Label: f.XLabel, Min: f.XRange.Min, Max: f.XRange.Max},
		Y:                 Axis{Metric: f.Selection.Y.String(), Label: f.YLabel, Min: f.YRange.Min, Max: f.YRange.Max},
		Points:            make([]Point, len(f.Points)),
		RegressionEnabled: f.RegressionEnabled,
		FitFailure:        f.FitFailure,
	}
	for i, p := range f.Points {
		doc.Points[i] = Point{Abbr: p.Abbr, State: p.State, X: p.X, Y: p.Y, Tooltip: p.Tooltip}
	}

	if ov := f.Regression; ov != nil {
		reg := &Regression{
			Slope:     ov.Slope,
			Intercept: ov.Intercept,
			RMSE:      ov.RMSE,
			Label:     ov.Label,
			Formula:   ov.Formula,
			Line:      [2][2]float64{{ov.From.X, ov.From.Predicted}, {ov.To.X, ov.To.Predicted}},
			Predicted: make([]float64, len(ov.Predicted)),
		}
		if !math.IsNaN(ov.RSquared) && !math.IsInf(ov.RSquared, 0) {
			r2 := ov.RSquared
			reg.RSquared = &r2
		}
		for i, p := range ov.Predicted {
			reg.Predicted[i] = p.Predicted
		}
		doc.Regression = reg
	}

	return doc
}

// Renderer writes frames as JSON documents.
type Renderer struct {
	indent string
}

var _ chart.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option = options.Option[*Renderer]

// WithIndent pretty-prints the output with the given indent string.
func WithIndent(indent string) Option {
	return options.NoError(func(r *Renderer) {
		r.indent = indent
	})
}

// New creates a compact JSON renderer.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Render writes one JSON document followed by a newline.
func (r *Renderer) Render(w io.Writer, f *chart.Frame) error {
	if f == nil {
		return errors.New("jsonframe: nil frame")
	}

	err := pool.Buffered(w, func(bw io.Writer) error {
		enc := json.NewEncoder(bw)
		enc.SetEscapeHTML(false)
		if r.indent != "" {
			enc.SetIndent("", r.indent)
		}

		return enc.Encode(NewDocument(f))
	})
	if err != nil {
		return fmt.Errorf("jsonframe: %w", err)
	}

	return nil
}

// Decode reads a document written by Render.
func Decode(rd io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(rd).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("jsonframe: %w", err)
	}

	return doc, nil
}
