package data

import (
	"math"
	"strconv"
	"strings"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/dataprep"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/errs"
)

// Kind is the storage type of a column.
type Kind int

const (
	Numeric Kind = iota
	Text
)

func (k Kind) String() string {
	if k == Text {
		return "text"
	}
	return "numeric"
}

// Column is one named column. Numeric columns mark missing entries with NaN,
// text columns with the dataprep missing markers.
type Column struct {
	Name string
	Kind Kind
	Num  []float64
	Text []string
}

// NumericColumn builds a numeric column.
func NumericColumn(name string, vals ...float64) Column {
	return Column{Name: name, Kind: Numeric, Num: vals}
}

// TextColumn builds a text column.
func TextColumn(name string, vals ...string) Column {
	return Column{Name: name, Kind: Text, Text: vals}
}

// Len is the number of rows in the column.
func (c Column) Len() int {
	if c.Kind == Text {
		return len(c.Text)
	}
	return len(c.Num)
}

// Dataset is an in-memory table of named, row-aligned columns.
// A Dataset is never modified after construction; operations return new ones.
type Dataset struct {
	cols  []Column
	index map[string]int
	rows  int
}

// New builds a Dataset. Column names must be unique and lengths equal.
func New(cols ...Column) (*Dataset, error) {
	d := &Dataset{cols: cols, index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if _, dup := d.index[c.Name]; dup {
			return nil, errs.New(errs.SchemaMismatch, "duplicate column").At("", c.Name)
		}
		d.index[c.Name] = i
		if i == 0 {
			d.rows = c.Len()
		} else if c.Len() != d.rows {
			return nil, errs.New(errs.SchemaMismatch, "column has %d rows, want %d", c.Len(), d.rows).At("", c.Name)
		}
	}
	return d, nil
}

// Rows returns the row count.
func (d *Dataset) Rows() int { return d.rows }

// Names returns the column names in order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.cols))
	for i, c := range d.cols {
		names[i] = c.Name
	}
	return names
}

// Has reports whether the named column exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]
	return ok
}

// Require fails with SchemaMismatch on the first absent column.
func (d *Dataset) Require(names ...string) error {
	for _, n := range names {
		if !d.Has(n) {
			return missingColumn(n)
		}
	}
	return nil
}

// Column returns the named column.
func (d *Dataset) Column(name string) (Column, error) {
	i, ok := d.index[name]
	if !ok {
		return Column{}, missingColumn(name)
	}
	return d.cols[i], nil
}

// Numeric returns a copy of the named column as float64. Text columns are
// parsed; missing markers become NaN.
func (d *Dataset) Numeric(name string) ([]float64, error) {
	c, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind == Numeric {
		return append([]float64(nil), c.Num...), nil
	}
	out := make([]float64, len(c.Text))
	for i, s := range c.Text {
		if dataprep.IsMissing(s) {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, errs.New(errs.SchemaMismatch, "row %d: %q is not numeric", i, s).At("", name)
		}
		out[i] = v
	}
	return out, nil
}

// Text returns a copy of the named text column. Numeric columns are rejected:
// callers coerce them explicitly with CoerceText.
func (d *Dataset) Text(name string) ([]string, error) {
	c, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Text {
		return nil, errs.New(errs.SchemaMismatch, "column is numeric, expected text").At("", name)
	}
	return append([]string(nil), c.Text...), nil
}

// CoerceText returns a Dataset whose named columns hold their canonical
// textual form: integral codes print without a fractional part, missing
// values stay missing. Text columns are left as they are.
func (d *Dataset) CoerceText(names ...string) (*Dataset, error) {
	cols := append([]Column(nil), d.cols...)
	for _, n := range names {
		i, ok := d.index[n]
		if !ok {
			return nil, missingColumn(n)
		}
		if cols[i].Kind == Text {
			continue
		}
		txt := make([]string, len(cols[i].Num))
		for r, v := range cols[i].Num {
			txt[r] = FormatCode(v)
		}
		cols[i] = TextColumn(n, txt...)
	}
	return New(cols...)
}

// Drop returns a Dataset without the named columns. Absent names are ignored.
func (d *Dataset) Drop(names ...string) *Dataset {
	skip := make(map[string]bool, len(names))
	for _, n := range names {
		skip[n] = true
	}
	cols := make([]Column, 0, len(d.cols))
	for _, c := range d.cols {
		if !skip[c.Name] {
			cols = append(cols, c)
		}
	}
	out, _ := New(cols...)
	return out
}

// Select returns a Dataset with exactly the named columns, in that order.
func (d *Dataset) Select(names ...string) (*Dataset, error) {
	cols := make([]Column, 0, len(names))
	for _, n := range names {
		c, err := d.Column(n)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return New(cols...)
}

// Take returns the rows at idx, in idx order.
func (d *Dataset) Take(idx []int) *Dataset {
	cols := make([]Column, len(d.cols))
	for j, c := range d.cols {
		if c.Kind == Text {
			v := make([]string, len(idx))
			for k, i := range idx {
				v[k] = c.Text[i]
			}
			cols[j] = TextColumn(c.Name, v...)
			continue
		}
		v := make([]float64, len(idx))
		for k, i := range idx {
			v[k] = c.Num[i]
		}
		cols[j] = NumericColumn(c.Name, v...)
	}
	out, _ := New(cols...)
	return out
}

// FormatCode renders a numeric value as category text. NaN renders as the
// empty missing marker.
func FormatCode(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case v == math.Trunc(v) && math.Abs(v) < 1<<53:
		return strconv.FormatInt(int64(v), 10)
	default:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
}

func missingColumn(name string) error {
	return errs.New(errs.SchemaMismatch, "expected column is absent").At("", name)
}
