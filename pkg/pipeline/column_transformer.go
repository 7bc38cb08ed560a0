package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/core"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/data"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/errs"
)

// ColumnTransformer runs a numeric and a categorical GroupPipeline side by
// side and concatenates their outputs: numeric columns first, then the
// categorical indicator blocks.
//
// A ColumnTransformer is fitted exactly once. After FitTransform returns, its
// learned state is never written again, so concurrent Transform calls are safe.
type ColumnTransformer struct {
	numeric     *GroupPipeline
	categorical *GroupPipeline
	fitted      *fittedState
}

type fittedState struct {
	id          string
	numeric     []State
	categorical []State
}

// LearnedState is a copy of everything a ColumnTransformer learned at fit.
type LearnedState struct {
	Numeric     []State
	Categorical []State
}

// NewColumnTransformer returns an unfitted transformer.
func NewColumnTransformer(numeric, categorical *GroupPipeline) *ColumnTransformer {
	return &ColumnTransformer{numeric: numeric, categorical: categorical}
}

// IsFitted reports whether FitTransform has succeeded.
func (ct *ColumnTransformer) IsFitted() bool { return ct.fitted != nil }

// FitID identifies the fit that produced the learned state; empty when unfitted.
func (ct *ColumnTransformer) FitID() string {
	if ct.fitted == nil {
		return ""
	}
	return ct.fitted.id
}

// FeatureNames lists the output columns in order.
func (ct *ColumnTransformer) FeatureNames() []string {
	return append(ct.numeric.OutputNames(), ct.categorical.OutputNames()...)
}

// OutputWidth is the number of output columns.
func (ct *ColumnTransformer) OutputWidth() int { return len(ct.FeatureNames()) }

// Groups returns the numeric and categorical column groups.
func (ct *ColumnTransformer) Groups() (numeric, categorical ColumnGroup) {
	return ct.numeric.Group, ct.categorical.Group
}

// LearnedState returns a deep copy of the fitted state.
func (ct *ColumnTransformer) LearnedState() (LearnedState, error) {
	if ct.fitted == nil {
		return LearnedState{}, errs.New(errs.NotFitted, "transformer has not been fitted")
	}
	ls := LearnedState{
		Numeric:     make([]State, len(ct.fitted.numeric)),
		Categorical: make([]State, len(ct.fitted.categorical)),
	}
	for i, st := range ct.fitted.numeric {
		ls.Numeric[i] = st.clone()
	}
	for i, st := range ct.fitted.categorical {
		ls.Categorical[i] = st.clone()
	}
	return ls, nil
}

// FitTransform fits both pipelines on ds and returns the transformed matrix.
// Only ds contributes to the learned state.
func (ct *ColumnTransformer) FitTransform(ds *data.Dataset) (*core.Matrix, error) {
	if ct.fitted != nil {
		return nil, errs.New(errs.AlreadyFitted, "fit %s already done; build a new transformer", ct.fitted.id)
	}
	if ds.Rows() == 0 {
		return nil, errs.New(errs.EmptyInput, "training set has no rows")
	}
	numIn, catIn, err := ct.blocks(ds)
	if err != nil {
		return nil, err
	}
	numStates, numOut, err := ct.numeric.Fit(numIn)
	if err != nil {
		return nil, err
	}
	catStates, catOut, err := ct.categorical.Fit(catIn)
	if err != nil {
		return nil, err
	}
	m, err := assemble(ds.Rows(), numOut, catOut)
	if err != nil {
		return nil, err
	}
	ct.fitted = &fittedState{id: uuid.NewString(), numeric: numStates, categorical: catStates}
	return m, nil
}

// Transform applies the fitted state to ds.
func (ct *ColumnTransformer) Transform(ds *data.Dataset) (*core.Matrix, error) {
	f := ct.fitted
	if f == nil {
		return nil, errs.New(errs.NotFitted, "transform called before fit")
	}
	numIn, catIn, err := ct.blocks(ds)
	if err != nil {
		return nil, err
	}
	numOut, err := ct.numeric.Transform(numIn, f.numeric)
	if err != nil {
		return nil, err
	}
	catOut, err := ct.categorical.Transform(catIn, f.categorical)
	if err != nil {
		return nil, err
	}
	return assemble(ds.Rows(), numOut, catOut)
}

func (ct *ColumnTransformer) blocks(ds *data.Dataset) (num, cat *core.Block, err error) {
	numCols := make([][]float64, len(ct.numeric.Group.Columns))
	for j, name := range ct.numeric.Group.Columns {
		if numCols[j], err = ds.Numeric(name); err != nil {
			return nil, nil, fmt.Errorf("%s columns: %w", ct.numeric.Group.Name, err)
		}
	}
	catCols := make([][]string, len(ct.categorical.Group.Columns))
	for j, name := range ct.categorical.Group.Columns {
		if catCols[j], err = ds.Text(name); err != nil {
			return nil, nil, fmt.Errorf("%s columns: %w", ct.categorical.Group.Name, err)
		}
	}
	return core.NewNumericBlock(ct.numeric.Group.Columns, numCols),
		core.NewTextBlock(ct.categorical.Group.Columns, catCols), nil
}

func assemble(rows int, blocks ...*core.Block) (*core.Matrix, error) {
	var cols [][]float64
	for _, b := range blocks {
		if b.IsText() && b.Width() > 0 {
			return nil, fmt.Errorf("pipeline output %v is not numeric", b.Names)
		}
		cols = append(cols, b.Num...)
	}
	return core.FromColumns(rows, cols)
}
