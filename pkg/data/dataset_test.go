package data

import (
	"bytes"
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/core"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/errs"
)

func sample(t *testing.T) *Dataset {
	t.Helper()
	ds, err := New(
		NumericColumn("ID", 1, 2, 3),
		NumericColumn("SEX", 1, math.NaN(), 2),
		TextColumn("LIMIT_BAL", "100", "", "300"),
	)
	require.NoError(t, err)
	return ds
}

func TestNewRejectsRaggedColumns(t *testing.T) {
	_, err := New(NumericColumn("a", 1, 2), NumericColumn("b", 1))
	assert.True(t, errors.Is(err, errs.SchemaMismatch))

	_, err = New(NumericColumn("a", 1), NumericColumn("a", 1))
	assert.True(t, errors.Is(err, errs.SchemaMismatch))
}

func TestCoerceText(t *testing.T) {
	ds, err := sample(t).CoerceText("SEX")
	require.NoError(t, err)

	got, err := ds.Text("SEX")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "", "2"}, got)

	_, err = sample(t).CoerceText("EDUCATION")
	assert.True(t, errors.Is(err, errs.SchemaMismatch))
}

func TestTextRejectsNumericColumn(t *testing.T) {
	_, err := sample(t).Text("SEX")
	assert.True(t, errors.Is(err, errs.SchemaMismatch))
}

func TestNumericParsesText(t *testing.T) {
	got, err := sample(t).Numeric("LIMIT_BAL")
	require.NoError(t, err)
	assert.Equal(t, 100.0, got[0])
	assert.True(t, math.IsNaN(got[1]))

	bad, err := New(TextColumn("AGE", "x"))
	require.NoError(t, err)
	_, err = bad.Numeric("AGE")
	assert.True(t, errors.Is(err, errs.SchemaMismatch))
}

func TestDropSelectTake(t *testing.T) {
	ds := sample(t)

	assert.Equal(t, []string{"SEX", "LIMIT_BAL"}, ds.Drop("ID", "absent").Names())

	sel, err := ds.Select("LIMIT_BAL", "ID")
	require.NoError(t, err)
	assert.Equal(t, []string{"LIMIT_BAL", "ID"}, sel.Names())

	_, err = ds.Select("nope")
	assert.True(t, errors.Is(err, errs.SchemaMismatch))

	ids, err := ds.Take([]int{2, 0}).Numeric("ID")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1}, ids)

	assert.NoError(t, ds.Require("ID", "SEX"))
	assert.Error(t, ds.Require("ID_a"))
}

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "-2", FormatCode(-2))
	assert.Equal(t, "0", FormatCode(0))
	assert.Equal(t, "1.5", FormatCode(1.5))
	assert.Equal(t, "", FormatCode(math.NaN()))
}

func TestReadCSVDetectsTypes(t *testing.T) {
	in := "ID,SEX,NOTE,LIMIT_BAL\n1,1,a,100\n2,2,b,\n3,1,c,300\n"
	ds, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Rows())
	sex, err := ds.Column("SEX")
	require.NoError(t, err)
	assert.Equal(t, Numeric, sex.Kind)

	note, err := ds.Column("NOTE")
	require.NoError(t, err)
	assert.Equal(t, Text, note.Kind)

	lim, err := ds.Numeric("LIMIT_BAL")
	require.NoError(t, err)
	assert.Equal(t, 100.0, lim[0])
	assert.True(t, math.IsNaN(lim[1]))
}

func TestCSVLoaderLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,x\n"), 0o644))

	ds, err := CSVLoader{}.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Names())

	_, err = CSVLoader{}.Load(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	m, err := core.FromColumns(2, [][]float64{{1, 2}, {0.5, 1}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, m, []string{"x", "y"}))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "x,y", lines[0])

	assert.Error(t, WriteCSV(&buf, m, []string{"x"}))
}

func TestTrainTestSplitDeterministic(t *testing.T) {
	cols := make([]float64, 10)
	for i := range cols {
		cols[i] = float64(i)
	}
	ds, err := New(NumericColumn("v", cols...))
	require.NoError(t, err)

	tr1, te1, err := TrainTestSplit(ds, 0.3, 42)
	require.NoError(t, err)
	tr2, te2, err := TrainTestSplit(ds, 0.3, 42)
	require.NoError(t, err)

	assert.Equal(t, 7, tr1.Rows())
	assert.Equal(t, 3, te1.Rows())
	a, _ := te1.Numeric("v")
	b, _ := te2.Numeric("v")
	assert.Equal(t, a, b)
	c, _ := tr1.Numeric("v")
	d, _ := tr2.Numeric("v")
	assert.Equal(t, c, d)

	_, _, err = TrainTestSplit(ds, 1, 1)
	assert.Error(t, err)
}
