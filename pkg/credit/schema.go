// Package credit binds the preprocessing pipeline to the credit-default
// dataset: its column groups, category vocabularies, target and identifier
// columns.
package credit

import (
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/data"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/pipeline"
)

const (
	// TargetColumn holds the label appended as the last output column.
	TargetColumn = "default_payment_next_month"
)

// IDColumns are dropped from the feature set.
var IDColumns = []string{"ID", "ID_a"}

// NumericColumns is the numeric group, in output order. Only BILL_AMT1 of the
// bill amounts is used.
var NumericColumns = []string{
	"LIMIT_BAL", "AGE", "BILL_AMT1",
	"PAY_AMT1", "PAY_AMT2", "PAY_AMT3", "PAY_AMT4", "PAY_AMT5", "PAY_AMT6",
}

// Vocabularies lists the categorical group in output order together with the
// allowed values of each column. Column order and vocabulary order travel
// together in this one slice.
var Vocabularies = []pipeline.Vocabulary{
	{Column: "SEX", Values: []string{"1", "2"}},
	{Column: "EDUCATION", Values: []string{"0", "1", "2", "3", "4", "5", "6"}},
	{Column: "MARRIAGE", Values: []string{"0", "1", "2", "3"}},
	{Column: "PAY_0", Values: payStatus()},
	{Column: "PAY_2", Values: payStatus()},
	{Column: "PAY_4", Values: payStatus()},
}

func payStatus() []string {
	return []string{"-2", "-1", "0", "1", "2", "3", "4", "5", "6", "7", "8"}
}

// CategoricalColumns returns the categorical group, in output order.
func CategoricalColumns() []string {
	cols := make([]string, len(Vocabularies))
	for i, v := range Vocabularies {
		cols[i] = v.Column
	}
	return cols
}

// NewPreprocessor builds the unfitted column transformer:
//
//	numeric:     mean imputer -> standard scaler
//	categorical: most-frequent imputer -> one-hot encoder -> standard scaler
//
// The indicator columns are standardized like any other column.
func NewPreprocessor() *pipeline.ColumnTransformer {
	vocab := make([]pipeline.Vocabulary, len(Vocabularies))
	for i, v := range Vocabularies {
		vocab[i] = pipeline.Vocabulary{Column: v.Column, Values: append([]string(nil), v.Values...)}
	}

	num := pipeline.NewGroupPipeline(
		pipeline.ColumnGroup{Name: "num_pipeline", Kind: pipeline.Numeric, Columns: append([]string(nil), NumericColumns...)},
		pipeline.Imputer{Strategy: pipeline.Mean},
		pipeline.Scaler{},
	)
	cat := pipeline.NewGroupPipeline(
		pipeline.ColumnGroup{Name: "cat_onehot_pipeline", Kind: pipeline.Categorical, Columns: CategoricalColumns()},
		pipeline.Imputer{Strategy: pipeline.MostFrequent},
		pipeline.Encoder{Categories: vocab},
		pipeline.Scaler{},
	)
	return pipeline.NewColumnTransformer(num, cat)
}

// FeatureWidth is the number of feature columns the preprocessor emits.
func FeatureWidth() int {
	n := len(NumericColumns)
	for _, v := range Vocabularies {
		n += len(v.Values)
	}
	return n
}

// PrepareFeatures coerces the categorical columns to text and removes the
// target and identifier columns. Every column the preprocessor reads must be
// present; the target and identifiers are dropped only if present, so the
// same preparation serves inference-time inputs.
func PrepareFeatures(ds *data.Dataset) (*data.Dataset, error) {
	if err := ds.Require(NumericColumns...); err != nil {
		return nil, err
	}
	coerced, err := ds.CoerceText(CategoricalColumns()...)
	if err != nil {
		return nil, err
	}
	return coerced.Drop(append([]string{TargetColumn}, IDColumns...)...), nil
}

// Target returns the raw numeric target column.
func Target(ds *data.Dataset) ([]float64, error) {
	return ds.Numeric(TargetColumn)
}
