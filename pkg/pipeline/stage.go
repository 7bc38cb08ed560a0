package pipeline

import (
	"errors"
	"fmt"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/core"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/dataprep"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/errs"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/stats"
)

// StageKind identifies the concrete Stage variant.
type StageKind uint8

const (
	ImputeStage StageKind = iota + 1
	EncodeStage
	ScaleStage
)

// Stage is one fit/transform step applied to a Block.
// Fit must not retain or modify its input; Transform must not modify the State.
type Stage interface {
	Kind() StageKind
	Name() string
	Fit(in *core.Block) (State, error)
	Transform(in *core.Block, st State) (*core.Block, error)
}

// State is the learned state of one stage. Which fields are set depends on
// the stage: Fill for mean imputation, FillText for most-frequent imputation,
// Mean and Std for scaling. Encoders learn nothing.
type State struct {
	Fill     []float64
	FillText []string
	Mean     []float64
	Std      []float64
}

func (s State) clone() State {
	return State{
		Fill:     append([]float64(nil), s.Fill...),
		FillText: append([]string(nil), s.FillText...),
		Mean:     append([]float64(nil), s.Mean...),
		Std:      append([]float64(nil), s.Std...),
	}
}

// ImputeStrategy selects how an Imputer computes its fill value.
type ImputeStrategy uint8

const (
	Mean ImputeStrategy = iota + 1
	MostFrequent
)

// Imputer replaces missing entries with a per-column value learned at fit.
// Mean works on numeric blocks, MostFrequent on text blocks.
type Imputer struct {
	Strategy ImputeStrategy
}

func (Imputer) Kind() StageKind { return ImputeStage }

func (im Imputer) Name() string {
	if im.Strategy == MostFrequent {
		return "imputer(most_frequent)"
	}
	return "imputer(mean)"
}

func (im Imputer) Fit(in *core.Block) (State, error) {
	if err := im.checkInput(in); err != nil {
		return State{}, err
	}
	if in.Width() > 0 && in.Rows() == 0 {
		return State{}, errs.New(errs.EmptyInput, "no rows to fit").At(im.Name(), "")
	}

	var st State
	if im.Strategy == MostFrequent {
		st.FillText = make([]string, in.Width())
		for j, col := range in.Text {
			mode, ok := stats.MostFrequent(col, dataprep.IsMissing)
			if !ok {
				return State{}, errs.New(errs.EmptyInput, "no observed values").At(im.Name(), in.Names[j])
			}
			st.FillText[j] = mode
		}
		return st, nil
	}

	st.Fill = make([]float64, in.Width())
	for j, col := range in.Num {
		mean, n := stats.ObservedMean(col)
		if n == 0 {
			return State{}, errs.New(errs.EmptyInput, "no observed values").At(im.Name(), in.Names[j])
		}
		st.Fill[j] = mean
	}
	return st, nil
}

func (im Imputer) Transform(in *core.Block, st State) (*core.Block, error) {
	if err := im.checkInput(in); err != nil {
		return nil, err
	}
	if im.Strategy == MostFrequent {
		if len(st.FillText) != in.Width() {
			return nil, stateMismatch(im.Name(), len(st.FillText), in.Width())
		}
		cols := make([][]string, in.Width())
		for j, col := range in.Text {
			cols[j] = dataprep.FillMissing(col, st.FillText[j])
		}
		return core.NewTextBlock(in.Names, cols), nil
	}

	if len(st.Fill) != in.Width() {
		return nil, stateMismatch(im.Name(), len(st.Fill), in.Width())
	}
	cols := make([][]float64, in.Width())
	for j, col := range in.Num {
		cols[j] = dataprep.FillNaN(col, st.Fill[j])
	}
	return core.NewNumericBlock(in.Names, cols), nil
}

func (im Imputer) checkInput(in *core.Block) error {
	switch im.Strategy {
	case Mean:
		if in.IsText() {
			return errs.New(errs.SchemaMismatch, "mean imputation needs numeric columns").At(im.Name(), "")
		}
	case MostFrequent:
		if !in.IsText() {
			return errs.New(errs.SchemaMismatch, "most-frequent imputation needs text columns").At(im.Name(), "")
		}
	default:
		return fmt.Errorf("unknown impute strategy %d", im.Strategy)
	}
	return nil
}

// Encoder one-hot encodes text columns against fixed vocabularies. The i-th
// vocabulary belongs to the i-th input column; the pairing is checked by name
// on every call.
type Encoder struct {
	Categories []Vocabulary
}

func (Encoder) Kind() StageKind { return EncodeStage }

func (Encoder) Name() string { return "onehot_encoder" }

// Fit learns nothing. It encodes the input once so that unknown categories
// and column/vocabulary mismatches fail at fit time.
func (e Encoder) Fit(in *core.Block) (State, error) {
	_, err := e.Transform(in, State{})
	return State{}, err
}

func (e Encoder) Transform(in *core.Block, _ State) (*core.Block, error) {
	if !in.IsText() {
		return nil, errs.New(errs.SchemaMismatch, "encoder needs text columns").At(e.Name(), "")
	}
	if in.Width() != len(e.Categories) {
		return nil, errs.New(errs.SchemaMismatch, "%d columns for %d vocabularies", in.Width(), len(e.Categories)).At(e.Name(), "")
	}

	names := e.OutputNames(in.Names)
	cols := make([][]float64, 0, len(names))
	for j, col := range in.Text {
		vocab := e.Categories[j]
		if in.Names[j] != vocab.Column {
			return nil, errs.New(errs.SchemaMismatch, "vocabulary %d belongs to %s", j, vocab.Column).At(e.Name(), in.Names[j])
		}
		ind, err := dataprep.OneHot(col, vocab.Values)
		if err != nil {
			var unknown *dataprep.UnknownValueError
			if errors.As(err, &unknown) {
				return nil, (&errs.Error{Kind: errs.UnknownCategory, Err: err}).At(e.Name(), in.Names[j])
			}
			return nil, err
		}
		cols = append(cols, ind...)
	}
	return core.NewNumericBlock(names, cols), nil
}

// OutputNames names the indicator columns "<column>_<value>" in vocabulary order.
func (e Encoder) OutputNames(in []string) []string {
	var out []string
	for j, vocab := range e.Categories {
		col := vocab.Column
		if j < len(in) {
			col = in[j]
		}
		for _, v := range vocab.Values {
			out = append(out, col+"_"+v)
		}
	}
	return out
}

// Width is the total number of indicator columns.
func (e Encoder) Width() int {
	n := 0
	for _, vocab := range e.Categories {
		n += len(vocab.Values)
	}
	return n
}

// Scaler standardizes numeric columns to zero mean and unit variance using the
// population standard deviation. Columns with zero deviation map to 0.
type Scaler struct{}

func (Scaler) Kind() StageKind { return ScaleStage }

func (Scaler) Name() string { return "standard_scaler" }

func (s Scaler) Fit(in *core.Block) (State, error) {
	if in.IsText() {
		return State{}, errs.New(errs.SchemaMismatch, "scaler needs numeric columns").At(s.Name(), "")
	}
	if in.Width() > 0 && in.Rows() == 0 {
		return State{}, errs.New(errs.EmptyInput, "no rows to fit").At(s.Name(), "")
	}
	st := State{Mean: make([]float64, in.Width()), Std: make([]float64, in.Width())}
	for j, col := range in.Num {
		st.Mean[j], st.Std[j] = stats.PopMeanStd(col)
	}
	return st, nil
}

func (s Scaler) Transform(in *core.Block, st State) (*core.Block, error) {
	if in.IsText() {
		return nil, errs.New(errs.SchemaMismatch, "scaler needs numeric columns").At(s.Name(), "")
	}
	if len(st.Mean) != in.Width() || len(st.Std) != in.Width() {
		return nil, stateMismatch(s.Name(), len(st.Mean), in.Width())
	}
	cols := make([][]float64, in.Width())
	for j, col := range in.Num {
		cols[j] = stats.StandardizeColumn(col, st.Mean[j], st.Std[j])
	}
	return core.NewNumericBlock(in.Names, cols), nil
}

func stateMismatch(stage string, fitted, got int) error {
	return errs.New(errs.SchemaMismatch, "fitted on %d columns, got %d", fitted, got).At(stage, "")
}
