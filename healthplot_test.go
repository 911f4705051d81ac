package healthplot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/healthplot/dataset"
	"github.com/arloliu/healthplot/errs"
)

const testData = "dataset/testdata/data.csv"

func TestLoadDataset(t *testing.T) {
	ds, err := LoadDataset(testData)
	require.NoError(t, err)
	require.Equal(t, 12, ds.Len())

	_, err = LoadDataset("dataset/testdata/missing.csv")
	require.ErrorIs(t, err, errs.ErrDataLoad)
}

func TestNewSession(t *testing.T) {
	ds, err := LoadDataset(testData)
	require.NoError(t, err)

	s, err := NewSession(ds, "")
	require.NoError(t, err)
	require.Equal(t, "interactive", s.Profile().Name)

	s, err = NewSession(ds, "basic")
	require.NoError(t, err)
	_, err = s.SelectX(dataset.Age)
	require.ErrorIs(t, err, errs.ErrAxisLocked)

	_, err = NewSession(ds, "poster")
	require.ErrorIs(t, err, errs.ErrUnknownProfile)
}

func TestNewInteractiveSession(t *testing.T) {
	ds, err := LoadDataset(testData)
	require.NoError(t, err)

	s, err := NewInteractiveSession(ds)
	require.NoError(t, err)

	changed, err := s.SetRegression(true)
	require.NoError(t, err)
	require.True(t, changed)

	_, err = s.SelectX(dataset.Income)
	require.NoError(t, err)
	res, fitErr := s.Regression()
	require.NoError(t, fitErr)
	require.Equal(t, "income", res.X)
}

func TestFit(t *testing.T) {
	ds, err := LoadDataset(testData)
	require.NoError(t, err)

	res, err := Fit(ds, dataset.Poverty, dataset.Healthcare)
	require.NoError(t, err)
	require.Equal(t, 12, res.N)
}

func TestStateID(t *testing.T) {
	require.Equal(t, StateID("al"), StateID(" AL "))
	require.NotEqual(t, StateID("AL"), StateID("AK"))

	ds, err := LoadDataset(testData)
	require.NoError(t, err)
	o, ok := ds.Lookup("ak")
	require.True(t, ok)
	require.Equal(t, StateID("AK"), o.ID())
}
