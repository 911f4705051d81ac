package svgchart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/arloliu/healthplot/chart"
	"github.com/arloliu/healthplot/config"
	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/errs"
	"github.com/arloliu/healthplot/format"
)

func session(t *testing.T, opts ...chart.SessionOption) *chart.Session {
	t.Helper()

	ds, err := dataset.LoadFile("../../dataset/testdata/data.csv")
	require.NoError(t, err)
	p, err := config.Default().Profile(config.ProfileInteractive)
	require.NoError(t, err)
	s, err := chart.NewSession(ds, p, opts...)
	require.NoError(t, err)

	return s
}

func TestNew_Options(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	require.Equal(t, format.OutputSVG, r.Format())

	r, err = New(WithFormat(format.OutputPNG), WithDotWidth(3), WithLegend(false))
	require.NoError(t, err)
	require.Equal(t, format.OutputPNG, r.Format())

	_, err = New(WithFormat(format.OutputJSON))
	require.ErrorIs(t, err, errs.ErrUnsupportedFormat)

	_, err = New(WithDotWidth(0))
	require.Error(t, err)
}

func TestBuild_Series(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	plain := r.build(session(t).Frame())
	require.Len(t, plain.Series, 1)
	require.Empty(t, plain.Elements)
	require.Equal(t, "In Poverty (%)", plain.XAxis.Name)
	require.Equal(t, "Lacks Healthcare (%)", plain.YAxis.Name)
	require.Equal(t, 960, plain.Width)

	f := session(t, chart.WithRegression(true)).Frame()
	withFit := r.build(f)
	require.Len(t, withFit.Series, 3)
	require.Len(t, withFit.Elements, 1)

	line, ok := withFit.Series[1].(gochart.ContinuousSeries)
	require.True(t, ok)
	require.Equal(t, []float64{f.Regression.From.X, f.Regression.To.X}, line.XValues)

	notes, ok := withFit.Series[2].(gochart.AnnotationSeries)
	require.True(t, ok)
	require.Equal(t, f.Regression.Label, notes.Annotations[0].Label)
}

func TestBuild_FitFailureNote(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	f := session(t).Frame()
	f.RegressionEnabled = true
	f.FitFailure = chart.FitFailureMessage

	ch := r.build(f)
	require.Len(t, ch.Series, 2)
	notes, ok := ch.Series[1].(gochart.AnnotationSeries)
	require.True(t, ok)
	require.Equal(t, chart.FitFailureMessage, notes.Annotations[0].Label)
}

func TestRender_SVG(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, session(t, chart.WithRegression(true)).Render(&buf, r))
	require.Contains(t, buf.String(), "<svg")
}

func TestRender_PNG(t *testing.T) {
	r, err := New(WithFormat(format.OutputPNG))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, session(t).Frame()))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestRender_NilFrame(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	require.Error(t, r.Render(&bytes.Buffer{}, nil))
}
