package core

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major matrix. It satisfies gonum's mat.Matrix.
type Matrix struct {
	R, C int
	Data []float64
}

var _ mat.Matrix = (*Matrix)(nil)

// NewMatrix allocates a zero matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{R: r, C: c, Data: make([]float64, r*c)}
}

// FromColumns builds a Matrix from column-major data with rows rows.
// Every column must have exactly rows entries.
func FromColumns(rows int, cols [][]float64) (*Matrix, error) {
	m := NewMatrix(rows, len(cols))
	for j, col := range cols {
		if len(col) != rows {
			return nil, errors.New("column length mismatch")
		}
		for i, v := range col {
			m.Data[i*m.C+j] = v
		}
	}
	return m, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (int, int) { return m.R, m.C }

// At returns element (i, j)
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.C+j] }

// Set sets element (i, j)
func (m *Matrix) Set(i, j int, v float64) { m.Data[i*m.C+j] = v }

// T returns the implicit transpose.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Clone Deep Copies of Matrix
func (m *Matrix) Clone() *Matrix {
	n := &Matrix{R: m.R, C: m.C, Data: make([]float64, len(m.Data))}
	copy(n.Data, m.Data)
	return n
}

// AppendColumn returns a new matrix with col added as the last column.
func (m *Matrix) AppendColumn(col []float64) (*Matrix, error) {
	if len(col) != m.R {
		return nil, errors.New("Dimension mismatch")
	}
	out := NewMatrix(m.R, m.C+1)
	for i := 0; i < m.R; i++ {
		copy(out.Data[i*out.C:i*out.C+m.C], m.Data[i*m.C:(i+1)*m.C])
		out.Data[i*out.C+m.C] = col[i]
	}
	return out, nil
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	r := make([]float64, m.C)
	copy(r, m.Data[i*m.C:(i+1)*m.C])
	return r
}

// ColSlice returns a copy of column j.
func (m *Matrix) ColSlice(j int) []float64 {
	v := make([]float64, m.R)
	for i := 0; i < m.R; i++ {
		v[i] = m.Data[i*m.C+j]
	}
	return v
}

// Equal reports whether a and b have the same shape and bitwise-identical
// elements. NaN entries compare equal to NaN.
func Equal(a, b *Matrix) bool {
	if a.R != b.R || a.C != b.C {
		return false
	}
	for i := range a.Data {
		if math.Float64bits(a.Data[i]) != math.Float64bits(b.Data[i]) {
			return false
		}
	}
	return true
}
