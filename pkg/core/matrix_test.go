package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromColumnsIsRowMajor(t *testing.T) {
	m, err := FromColumns(2, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, []float64{1, 3, 5, 2, 4, 6}, m.Data)
	assert.Equal(t, []float64{2, 4, 6}, m.Row(1))
	assert.Equal(t, []float64{5, 6}, m.ColSlice(2))

	_, err = FromColumns(2, [][]float64{{1}})
	assert.Error(t, err)
}

func TestAppendColumn(t *testing.T) {
	m, err := FromColumns(2, [][]float64{{1, 2}})
	require.NoError(t, err)

	out, err := m.AppendColumn([]float64{9, 8})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 9, 2, 8}, out.Data)
	assert.Equal(t, 1, m.C, "source matrix must be untouched")

	_, err = m.AppendColumn([]float64{1})
	assert.Error(t, err)
}

func TestGonumInterop(t *testing.T) {
	m, err := FromColumns(2, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	d := mat.NewDense(2, 2, []float64{1, 3, 2, 4})
	assert.True(t, mat.Equal(m, d))
	assert.Equal(t, 3.0, m.T().At(1, 0))
}

func TestEqualTreatsNaNAsEqual(t *testing.T) {
	a := &Matrix{R: 1, C: 2, Data: []float64{math.NaN(), 1}}
	b := a.Clone()
	assert.True(t, Equal(a, b))

	b.Set(0, 1, 2)
	assert.False(t, Equal(a, b))
	assert.False(t, Equal(a, NewMatrix(2, 1)))
}

func TestBlockRowsAndClone(t *testing.T) {
	b := NewTextBlock([]string{"SEX"}, [][]string{{"1", "2", "1"}})
	assert.True(t, b.IsText())
	assert.Equal(t, 3, b.Rows())
	assert.Equal(t, 1, b.Width())

	c := b.Clone()
	c.Text[0][0] = "2"
	assert.Equal(t, "1", b.Text[0][0])

	assert.Equal(t, 0, (&Block{}).Rows())
}
