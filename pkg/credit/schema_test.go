package credit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/data"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/errs"
)

// rawRows builds a raw table in the input schema with n rows.
func rawRows(t *testing.T, n int, sex float64) *data.Dataset {
	t.Helper()
	num := func(f func(i int) float64) []float64 {
		v := make([]float64, n)
		for i := range v {
			v[i] = f(i)
		}
		return v
	}
	cols := []data.Column{
		data.NumericColumn("ID", num(func(i int) float64 { return float64(i) })...),
		data.NumericColumn("ID_a", num(func(i int) float64 { return float64(i) })...),
	}
	for k, name := range NumericColumns {
		cols = append(cols, data.NumericColumn(name, num(func(i int) float64 { return float64((i + 1) * (k + 1)) })...))
	}
	cols = append(cols,
		data.NumericColumn("SEX", num(func(i int) float64 { return sex })...),
		data.NumericColumn("EDUCATION", num(func(i int) float64 { return float64(i % 7) })...),
		data.NumericColumn("MARRIAGE", num(func(i int) float64 { return float64(i % 4) })...),
		data.NumericColumn("PAY_0", num(func(i int) float64 { return float64(i%11 - 2) })...),
		data.NumericColumn("PAY_2", num(func(i int) float64 { return -1 })...),
		data.NumericColumn("PAY_4", num(func(i int) float64 { return 0 })...),
		data.NumericColumn("PAY_3", num(func(i int) float64 { return 0 })...),
		data.NumericColumn(TargetColumn, num(func(i int) float64 { return float64(i % 2) })...),
	)
	ds, err := data.New(cols...)
	require.NoError(t, err)
	return ds
}

func TestFeatureWidth(t *testing.T) {
	assert.Equal(t, 9+2+7+4+11+11+11, FeatureWidth())
	assert.Equal(t, FeatureWidth(), NewPreprocessor().OutputWidth())
}

func TestFeatureNamesOrder(t *testing.T) {
	names := NewPreprocessor().FeatureNames()
	require.Len(t, names, FeatureWidth())
	assert.Equal(t, NumericColumns, names[:9])
	assert.Equal(t, "SEX_1", names[9])
	assert.Equal(t, "EDUCATION_0", names[11])
	assert.Equal(t, "PAY_0_-2", names[22])
	assert.Equal(t, "PAY_4_8", names[len(names)-1])
}

func TestPrepareFeatures(t *testing.T) {
	feats, err := PrepareFeatures(rawRows(t, 5, 2))
	require.NoError(t, err)

	assert.False(t, feats.Has(TargetColumn))
	assert.False(t, feats.Has("ID"))
	assert.False(t, feats.Has("ID_a"))
	assert.True(t, feats.Has("PAY_3"), "unused columns pass through")

	pay0, err := feats.Text("PAY_0")
	require.NoError(t, err)
	assert.Equal(t, []string{"-2", "-1", "0", "1", "2"}, pay0)
}

func TestPrepareFeaturesMissingColumn(t *testing.T) {
	ds := rawRows(t, 2, 1).Drop("EDUCATION")
	_, err := PrepareFeatures(ds)
	assert.True(t, errors.Is(err, errs.SchemaMismatch))

	ds = rawRows(t, 2, 1).Drop("AGE")
	_, err = PrepareFeatures(ds)
	assert.True(t, errors.Is(err, errs.SchemaMismatch))
}

func TestPreprocessorEndToEnd(t *testing.T) {
	train, err := PrepareFeatures(rawRows(t, 30, 1))
	require.NoError(t, err)
	test, err := PrepareFeatures(rawRows(t, 4, 2))
	require.NoError(t, err)

	ct := NewPreprocessor()
	m, err := ct.FitTransform(train)
	require.NoError(t, err)
	assert.Equal(t, 30, m.R)
	assert.Equal(t, FeatureWidth(), m.C)

	out, err := ct.Transform(test)
	require.NoError(t, err)
	assert.Equal(t, 4, out.R)

	bad, err := PrepareFeatures(rawRows(t, 2, 3))
	require.NoError(t, err)
	_, err = ct.Transform(bad)
	assert.True(t, errors.Is(err, errs.UnknownCategory))
}

func TestTarget(t *testing.T) {
	y, err := Target(rawRows(t, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, y)
}
