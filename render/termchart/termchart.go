// Package termchart renders chart frames as text for terminals with ntcharts.
package termchart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/arloliu/healthplot/chart"
	"github.com/arloliu/healthplot/internal/options"
)

// Minimum canvas size that still leaves room for axis labels.
const (
	MinWidth  = 20
	MinHeight = 8
)

// Styles groups the lipgloss styles used when drawing.
type Styles struct {
	Title  lipgloss.Style
	Axis   lipgloss.Style
	Label  lipgloss.Style
	Marker lipgloss.Style
	Line   lipgloss.Style
	Note   lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Axis:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Marker: lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Line:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Note:   lipgloss.NewStyle().Italic(true),
	}
}

// Renderer draws frames on an ntcharts canvas.
type Renderer struct {
	width, height int
	marker        rune
	styles        Styles
}

var _ chart.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option = options.Option[*Renderer]

// WithSize sets the canvas size in cells, axis labels included.
func WithSize(w, h int) Option {
	return options.New(func(r *Renderer) error {
		if w < MinWidth || h < MinHeight {
			return fmt.Errorf("termchart: size %dx%d below minimum %dx%d", w, h, MinWidth, MinHeight)
		}
		r.width, r.height = w, h

		return nil
	})
}

// WithMarker sets the rune drawn for each state.
func WithMarker(m rune) Option {
	return options.NoError(func(r *Renderer) {
		r.marker = m
	})
}

// WithStyles replaces the default palette.
func WithStyles(s Styles) Option {
	return options.NoError(func(r *Renderer) {
		r.styles = s
	})
}

// New creates an 80x20 renderer.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{width: 80, height: 20, marker: '●', styles: DefaultStyles()}
	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	return r, nil
}

// Size returns the canvas size in cells.
func (r *Renderer) Size() (w, h int) {
	return r.width, r.height
}

// Render writes View(f) followed by a newline.
func (r *Renderer) Render(w io.Writer, f *chart.Frame) error {
	if f == nil {
		return errors.New("termchart: nil frame")
	}

	_, err := io.WriteString(w, r.View(f)+"\n")

	return err
}

// View returns the frame as a block of text: title, chart, axis captions and
// the regression note.
func (r *Renderer) View(f *chart.Frame) string {
	lc := linechart.New(r.width, r.height, f.XRange.Min, f.XRange.Max, f.YRange.Min, f.YRange.Max)
	lc.AxisStyle = r.styles.Axis
	lc.LabelStyle = r.styles.Label
	lc.XLabelFormatter = labelFormatter(f.XRange.Span())
	lc.YLabelFormatter = labelFormatter(f.YRange.Span())
	lc.SetXStep(4)
	lc.SetYStep(2)
	lc.UpdateGraphSizes()
	lc.DrawXYAxisAndLabel()

	if ov := f.Regression; ov != nil {
		lc.DrawBrailleLineWithStyle(
			canvas.Float64Point{X: ov.From.X, Y: ov.From.Predicted},
			canvas.Float64Point{X: ov.To.X, Y: ov.To.Predicted},
			r.styles.Line,
		)
	}
	for _, p := range f.Points {
		lc.DrawRuneWithStyle(canvas.Float64Point{X: p.X, Y: p.Y}, r.marker, r.styles.Marker)
	}

	var b strings.Builder
	if f.Title != "" {
		b.WriteString(r.styles.Title.Render(f.Title))
		b.WriteByte('\n')
	}
	b.WriteString(r.styles.Label.Render("↑ " + f.YLabel))
	b.WriteByte('\n')
	b.WriteString(lc.View())
	b.WriteByte('\n')
	b.WriteString(r.styles.Label.Render("→ " + f.XLabel))

	switch {
	case f.Regression != nil:
		b.WriteByte('\n')
		b.WriteString(r.styles.Note.Render(f.Regression.Label + "   " + f.Regression.Formula))
	case f.FitFailure != "":
		b.WriteByte('\n')
		b.WriteString(r.styles.Note.Render(f.FitFailure))
	}

	return b.String()
}

func labelFormatter(span float64) linechart.LabelFormatter {
	format := "%.1f"
	if span >= 100 {
		format = "%.0f"
	}

	return func(_ int, v float64) string {
		return fmt.Sprintf(format, v)
	}
}
