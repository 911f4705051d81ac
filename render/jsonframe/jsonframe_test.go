package jsonframe

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/healthplot/chart"
	"github.com/arloliu/healthplot/config"
	"github.com/arloliu/healthplot/dataset"
)

func frame(t *testing.T, opts ...chart.SessionOption) *chart.Frame {
	t.Helper()

	ds, err := dataset.LoadFile("../../dataset/testdata/data.csv")
	require.NoError(t, err)
	p, err := config.Default().Profile(config.ProfileInteractive)
	require.NoError(t, err)
	s, err := chart.NewSession(ds, p, opts...)
	require.NoError(t, err)

	return s.Frame()
}

func TestRender_Scatter(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	f := frame(t)
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, f))
	require.NotContains(t, buf.String(), `"regression":`)

	doc, err := Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, "interactive", doc.Profile)
	require.Equal(t, "poverty", doc.X.Metric)
	require.Equal(t, "Lacks Healthcare (%)", doc.Y.Label)
	require.Equal(t, f.XRange.Min, doc.X.Min)
	require.Len(t, doc.Points, 12)
	require.Equal(t, "Alabama\npoverty: 19.3\nhealthcare: 13.9", doc.Points[0].Tooltip)
	require.Nil(t, doc.Regression)
	require.False(t, doc.RegressionEnabled)
}

func TestRender_Regression(t *testing.T) {
	r, err := New(WithIndent("  "))
	require.NoError(t, err)

	f := frame(t, chart.WithRegression(true))
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, f))
	require.Contains(t, buf.String(), "\n  \"profile\"")
	require.Contains(t, buf.String(), "R² = ")

	doc, err := Decode(&buf)
	require.NoError(t, err)
	require.NotNil(t, doc.Regression)
	require.NotNil(t, doc.Regression.RSquared)
	require.InDelta(t, f.Regression.RSquared, *doc.Regression.RSquared, 1e-12)
	require.Len(t, doc.Regression.Predicted, 12)
	require.Equal(t, f.Regression.From.X, doc.Regression.Line[0][0])
}

func TestNewDocument_NaNRSquared(t *testing.T) {
	f := frame(t, chart.WithRegression(true))
	f.Regression.RSquared = math.NaN()

	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, f))
	require.Contains(t, buf.String(), `"r_squared":null`)
}

func TestRender_FitFailure(t *testing.T) {
	f := frame(t)
	f.RegressionEnabled = true
	f.FitFailure = chart.FitFailureMessage

	doc := NewDocument(f)
	require.Equal(t, chart.FitFailureMessage, doc.FitFailure)
	require.True(t, doc.RegressionEnabled)
}

func TestRender_Errors(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	require.Error(t, r.Render(&bytes.Buffer{}, nil))

	_, err = Decode(strings.NewReader("{"))
	require.Error(t, err)
}
