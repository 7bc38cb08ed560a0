package data

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/core"
)

// Loader yields a Dataset for a location.
type Loader interface {
	Load(ctx context.Context, path string) (*Dataset, error)
}

// CSVLoader reads CSV files with a header row from the local filesystem.
type CSVLoader struct{}

// Load implements Loader.
func (CSVLoader) Load(ctx context.Context, path string) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// ReadCSV parses CSV with a header row. Column types are detected per column:
// int and float columns become Numeric, everything else Text. Empty cells,
// "NA" and "NaN" are missing.
func ReadCSV(r io.Reader) (*Dataset, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.NaNValues([]string{"", "NA", "NaN"}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("read csv: %w", df.Err)
	}

	cols := make([]Column, 0, df.Ncol())
	for _, name := range df.Names() {
		s := df.Col(name)
		switch s.Type() {
		case series.Int, series.Float:
			cols = append(cols, NumericColumn(name, s.Float()...))
		default:
			cols = append(cols, TextColumn(name, s.Records()...))
		}
	}
	return New(cols...)
}

// WriteCSV writes m as CSV with the given header row.
func WriteCSV(w io.Writer, m *core.Matrix, header []string) error {
	if len(header) != m.C {
		return fmt.Errorf("header has %d names for %d columns", len(header), m.C)
	}
	df := dataframe.LoadMatrix(m)
	if err := df.SetNames(header...); err != nil {
		return err
	}
	return df.WriteCSV(w)
}
