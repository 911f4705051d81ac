package chart

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/healthplot/axis"
	"github.com/arloliu/healthplot/config"
	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/errs"
)

func loadTestdata(t *testing.T) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.LoadFile("../dataset/testdata/data.csv")
	require.NoError(t, err)

	return ds
}

func profile(t *testing.T, name string) config.Profile {
	t.Helper()

	p, err := config.Default().Profile(name)
	require.NoError(t, err)

	return p
}

func flatPoverty(t *testing.T) *dataset.Dataset {
	t.Helper()

	ds, err := dataset.New([]dataset.Observation{
		{State: "Alpha", Abbr: "AA", Poverty: 12.3, Age: 30, Income: 50000, Healthcare: 5, Obesity: 20, Smokes: 10},
		{State: "Beta", Abbr: "BB", Poverty: 12.3, Age: 40, Income: 60000, Healthcare: 9, Obesity: 25, Smokes: 15},
		{State: "Gamma", Abbr: "CC", Poverty: 12.3, Age: 50, Income: 55000, Healthcare: 7, Obesity: 30, Smokes: 12},
	})
	require.NoError(t, err)

	return ds
}

func TestNewSession_Defaults(t *testing.T) {
	ds := loadTestdata(t)
	s, err := NewSession(ds, profile(t, config.ProfileInteractive))
	require.NoError(t, err)
	defer s.Close()

	require.Equal(t, axis.DefaultSelection(), s.Selection())
	require.False(t, s.RegressionEnabled())

	res, fitErr := s.Regression()
	require.Nil(t, res)
	require.NoError(t, fitErr)

	x, y := s.Ranges()
	wantX, wantY, err := axis.DefaultPadding().Ranges(ds, axis.DefaultSelection())
	require.NoError(t, err)
	require.Equal(t, wantX, x)
	require.Equal(t, wantY, y)
}

func TestNewSession_Errors(t *testing.T) {
	ds := loadTestdata(t)

	_, err := NewSession(nil, profile(t, config.ProfileInteractive))
	require.ErrorIs(t, err, errs.ErrEmptyDataset)

	_, err = NewSession(ds, profile(t, config.ProfileBasic), WithSelection(dataset.Age, dataset.Healthcare))
	require.ErrorIs(t, err, errs.ErrAxisLocked)

	_, err = NewSession(ds, profile(t, config.ProfileBasic), WithRegression(true))
	require.ErrorIs(t, err, errs.ErrRegressionUnavailable)

	_, err = NewSession(ds, profile(t, config.ProfileInteractive), WithSelection(dataset.Obesity, dataset.Healthcare))
	require.ErrorIs(t, err, errs.ErrInvalidDimension)

	_, err = NewSession(ds, profile(t, config.ProfileInteractive), WithLogger(nil))
	require.Error(t, err)

	bad := profile(t, config.ProfileInteractive)
	bad.Padding.XMin = 0
	_, err = NewSession(ds, bad)
	require.ErrorIs(t, err, errs.ErrInvalidPadding)
}

func TestSession_RegressionOnStart(t *testing.T) {
	s, err := NewSession(loadTestdata(t), profile(t, config.ProfileRegression), WithRegression(true))
	require.NoError(t, err)

	res, fitErr := s.Regression()
	require.NoError(t, fitErr)
	require.NotNil(t, res)
	require.Equal(t, "poverty", res.X)
	require.Equal(t, "healthcare", res.Y)
}

func TestSession_AxisChangeRecomputesRegression(t *testing.T) {
	ds := loadTestdata(t)
	s, err := NewSession(ds, profile(t, config.ProfileInteractive), WithRegression(true))
	require.NoError(t, err)

	before, _ := s.Regression()
	require.NotNil(t, before)

	changed, err := s.SelectX(dataset.Age)
	require.NoError(t, err)
	require.True(t, changed)

	after, fitErr := s.Regression()
	require.NoError(t, fitErr)
	require.NotNil(t, after)
	require.Equal(t, "age", after.X)
	require.NotEqual(t, before.Slope, after.Slope)

	changed, err = s.SelectY(dataset.Obesity)
	require.NoError(t, err)
	require.True(t, changed)
	after, _ = s.Regression()
	require.Equal(t, "obesity", after.Y)
}

func TestSession_AxisChangeWithoutRegressionLeavesFitEmpty(t *testing.T) {
	s, err := NewSession(loadTestdata(t), profile(t, config.ProfileInteractive))
	require.NoError(t, err)

	_, err = s.SelectX(dataset.Income)
	require.NoError(t, err)

	res, fitErr := s.Regression()
	require.Nil(t, res)
	require.NoError(t, fitErr)
}

func TestSession_RoundTripRestoresRanges(t *testing.T) {
	s, err := NewSession(loadTestdata(t), profile(t, config.ProfileInteractive), WithRegression(true))
	require.NoError(t, err)

	x0, y0 := s.Ranges()
	fit0, _ := s.Regression()

	_, err = s.SelectX(dataset.Age)
	require.NoError(t, err)
	x1, y1 := s.Ranges()
	require.NotEqual(t, x0, x1)
	require.Equal(t, y0, y1)

	_, err = s.SelectX(dataset.Poverty)
	require.NoError(t, err)
	x2, y2 := s.Ranges()
	require.Equal(t, x0, x2)
	require.Equal(t, y0, y2)

	fit2, _ := s.Regression()
	require.Equal(t, fit0.Slope, fit2.Slope)
	require.Equal(t, fit0.RSquared, fit2.RSquared)
}

func TestSession_SameDimensionIsNoop(t *testing.T) {
	s, err := NewSession(loadTestdata(t), profile(t, config.ProfileInteractive), WithRegression(true))
	require.NoError(t, err)

	calls := 0
	s.Subscribe(func(axis.Event) { calls++ })

	before, _ := s.Regression()
	changed, err := s.SelectX(dataset.Poverty)
	require.NoError(t, err)
	require.False(t, changed)

	after, _ := s.Regression()
	require.Same(t, before, after)
	require.Zero(t, calls)
}

func TestSession_InvalidDimension(t *testing.T) {
	s, err := NewSession(loadTestdata(t), profile(t, config.ProfileInteractive))
	require.NoError(t, err)

	_, err = s.SelectX(dataset.Smokes)
	require.ErrorIs(t, err, errs.ErrInvalidDimension)
	_, err = s.SelectY(dataset.Age)
	require.ErrorIs(t, err, errs.ErrInvalidDimension)
	require.Equal(t, axis.DefaultSelection(), s.Selection())
}

func TestSession_LockedProfile(t *testing.T) {
	s, err := NewSession(loadTestdata(t), profile(t, config.ProfileBasic))
	require.NoError(t, err)

	_, err = s.SelectX(dataset.Age)
	require.ErrorIs(t, err, errs.ErrAxisLocked)

	changed, err := s.SelectX(dataset.Poverty)
	require.NoError(t, err)
	require.False(t, changed)

	_, err = s.SetRegression(true)
	require.ErrorIs(t, err, errs.ErrRegressionUnavailable)

	changed, err = s.SetRegression(false)
	require.NoError(t, err)
	require.False(t, changed)

	_, err = s.ToggleRegression()
	require.ErrorIs(t, err, errs.ErrRegressionUnavailable)
	require.False(t, s.RegressionEnabled())
}

func TestSession_ToggleRegression(t *testing.T) {
	s, err := NewSession(loadTestdata(t), profile(t, config.ProfileRegression))
	require.NoError(t, err)

	on, err := s.ToggleRegression()
	require.NoError(t, err)
	require.True(t, on)
	res, _ := s.Regression()
	require.NotNil(t, res)

	on, err = s.ToggleRegression()
	require.NoError(t, err)
	require.False(t, on)
	res, fitErr := s.Regression()
	require.Nil(t, res)
	require.NoError(t, fitErr)
}

func TestSession_DegenerateFit(t *testing.T) {
	s, err := NewSession(flatPoverty(t), profile(t, config.ProfileInteractive), WithRegression(true))
	require.NoError(t, err)

	res, fitErr := s.Regression()
	require.Nil(t, res)
	require.ErrorIs(t, fitErr, errs.ErrDegenerateFit)

	f := s.Frame()
	require.Nil(t, f.Regression)
	require.True(t, f.RegressionEnabled)
	require.Equal(t, FitFailureMessage, f.FitFailure)
	require.Len(t, f.Points, 3)

	_, err = s.SelectX(dataset.Age)
	require.NoError(t, err)
	res, fitErr = s.Regression()
	require.NoError(t, fitErr)
	require.NotNil(t, res)
	require.Empty(t, s.Frame().FitFailure)
}

func TestSession_Frame(t *testing.T) {
	s, err := NewSession(loadTestdata(t), profile(t, config.ProfileInteractive), WithRegression(true))
	require.NoError(t, err)

	f := s.Frame()
	require.Equal(t, "interactive", f.Profile)
	require.Equal(t, 960, f.Width)
	require.Equal(t, "In Poverty (%)", f.XLabel)
	require.Equal(t, "Lacks Healthcare (%)", f.YLabel)
	require.Len(t, f.Points, 12)
	require.Equal(t, "AL", f.Points[0].Abbr)
	require.Equal(t, "Alabama\npoverty: 19.3\nhealthcare: 13.9", f.Points[0].Tooltip)

	for _, p := range f.Points {
		require.True(t, f.XRange.Contains(p.X), p.Abbr)
		require.True(t, f.YRange.Contains(p.Y), p.Abbr)
	}

	require.NotNil(t, f.Regression)
	require.Len(t, f.Regression.Predicted, 12)
	require.LessOrEqual(t, f.Regression.From.X, f.Regression.To.X)
	require.Contains(t, f.Regression.Label, "R² = ")
}

func TestSession_Render(t *testing.T) {
	s, err := NewSession(loadTestdata(t), profile(t, config.ProfileInteractive),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)

	var got *Frame
	var buf bytes.Buffer
	err = s.Render(&buf, RendererFunc(func(w io.Writer, f *Frame) error {
		got = f
		_, err := io.WriteString(w, f.XLabel)
		return err
	}))
	require.NoError(t, err)
	require.Equal(t, "In Poverty (%)", buf.String())
	require.NotNil(t, got)

	boom := errors.New("boom")
	err = s.Render(&buf, RendererFunc(func(io.Writer, *Frame) error { return boom }))
	require.ErrorIs(t, err, boom)

	require.Error(t, s.Render(&buf, nil))
}

func TestSession_Close(t *testing.T) {
	s, err := NewSession(loadTestdata(t), profile(t, config.ProfileInteractive))
	require.NoError(t, err)

	x0, _ := s.Ranges()
	s.Close()
	s.Close()

	_, err = s.SelectX(dataset.Age)
	require.NoError(t, err)
	x1, _ := s.Ranges()
	require.Equal(t, x0, x1)
}

func TestTooltip(t *testing.T) {
	o := dataset.Observation{State: "Alaska", Abbr: "AK", Age: 33.3, Smokes: 19.9}
	require.Equal(t, "Alaska\nage: 33.3\nsmokes: 19.9", Tooltip(o, axis.Selection{X: dataset.Age, Y: dataset.Smokes}))
}

func TestSession_TooltipByAbbreviation(t *testing.T) {
	s, err := NewSession(loadTestdata(t), profile(t, config.ProfileInteractive))
	require.NoError(t, err)
	defer s.Close()

	tip, err := s.Tooltip(" hi ")
	require.NoError(t, err)
	require.Equal(t, "Hawaii\npoverty: 11.4\nhealthcare: 6.4", tip)

	_, err = s.SelectY(dataset.Obesity)
	require.NoError(t, err)
	tip, err = s.Tooltip("HI")
	require.NoError(t, err)
	require.Equal(t, "Hawaii\npoverty: 11.4\nobesity: 22.7", tip)

	_, err = s.Tooltip("ZZ")
	require.ErrorIs(t, err, errs.ErrUnknownState)
}
