// Package svgchart renders chart frames as SVG or PNG images with go-chart.
package svgchart

import (
	"errors"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/arloliu/healthplot/chart"
	"github.com/arloliu/healthplot/errs"
	"github.com/arloliu/healthplot/format"
	"github.com/arloliu/healthplot/internal/options"
	"github.com/arloliu/healthplot/internal/pool"
)

var (
	markerColor = drawing.ColorFromHex("89bdd3")
	lineColor   = drawing.ColorFromHex("e3242b")
	noteColor   = drawing.ColorFromHex("555555")
)

// Renderer draws frames with go-chart.
type Renderer struct {
	format   format.OutputType
	dotWidth float64
	legend   bool
}

var _ chart.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option = options.Option[*Renderer]

// WithFormat selects format.OutputSVG (default) or format.OutputPNG.
func WithFormat(f format.OutputType) Option {
	return options.New(func(r *Renderer) error {
		if f != format.OutputSVG && f != format.OutputPNG {
			return fmt.Errorf("%w: svgchart cannot render %s", errs.ErrUnsupportedFormat, f)
		}
		r.format = f

		return nil
	})
}

// WithDotWidth sets the marker radius in pixels.
func WithDotWidth(w float64) Option {
	return options.New(func(r *Renderer) error {
		if !(w > 0) {
			return fmt.Errorf("dot width must be positive, got %g", w)
		}
		r.dotWidth = w

		return nil
	})
}

// WithLegend toggles the series legend.
func WithLegend(enabled bool) Option {
	return options.NoError(func(r *Renderer) {
		r.legend = enabled
	})
}

// New creates an SVG renderer with 5px markers and a legend.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{format: format.OutputSVG, dotWidth: 5, legend: true}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Format returns the output type the renderer produces.
func (r *Renderer) Format() format.OutputType {
	return r.format
}

// Render draws f to w.
func (r *Renderer) Render(w io.Writer, f *chart.Frame) error {
	if f == nil {
		return errors.New("svgchart: nil frame")
	}

	ch := r.build(f)

	provider := gochart.SVG
	if r.format == format.OutputPNG {
		provider = gochart.PNG
	}
	err := pool.Buffered(w, func(bw io.Writer) error {
		return ch.Render(provider, bw)
	})
	if err != nil {
		return fmt.Errorf("svgchart: render %s: %w", r.format, err)
	}

	return nil
}

func (r *Renderer) build(f *chart.Frame) gochart.Chart {
	xs := make([]float64, len(f.Points))
	ys := make([]float64, len(f.Points))
	for i, p := range f.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	series := []gochart.Series{
		gochart.ContinuousSeries{
			Name:    "States",
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeWidth: gochart.Disabled,
				DotWidth:    r.dotWidth,
				DotColor:    markerColor,
			},
		},
	}

	var notes []gochart.Value2
	if ov := f.Regression; ov != nil {
		series = append(series, gochart.ContinuousSeries{
			Name:    "Regression",
			XValues: []float64{ov.From.X, ov.To.X},
			YValues: []float64{ov.From.Predicted, ov.To.Predicted},
			Style: gochart.Style{
				StrokeColor: lineColor,
				StrokeWidth: 2,
			},
		})
		notes = append(notes, gochart.Value2{XValue: ov.To.X, YValue: ov.To.Predicted, Label: ov.Label})
	}
	if f.FitFailure != "" {
		notes = append(notes, gochart.Value2{XValue: f.XRange.Min, YValue: f.YRange.Max, Label: f.FitFailure})
	}
	if len(notes) > 0 {
		series = append(series, gochart.AnnotationSeries{
			Annotations: notes,
			Style: gochart.Style{
				FontColor:   noteColor,
				StrokeColor: noteColor,
			},
		})
	}

	ch := gochart.Chart{
		Title:  f.Title,
		Width:  f.Width,
		Height: f.Height,
		Background: gochart.Style{Padding: gochart.Box{
			Top:    f.Margin.Top,
			Right:  f.Margin.Right,
			Bottom: f.Margin.Bottom,
			Left:   f.Margin.Left,
		}},
		XAxis: gochart.XAxis{
			Name:  f.XLabel,
			Range: &gochart.ContinuousRange{Min: f.XRange.Min, Max: f.XRange.Max},
		},
		YAxis: gochart.YAxis{
			Name:  f.YLabel,
			Range: &gochart.ContinuousRange{Min: f.YRange.Min, Max: f.YRange.Max},
		},
		Series: series,
	}
	if r.legend && f.Regression != nil {
		ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	}

	return ch
}
