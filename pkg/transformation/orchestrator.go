// Package transformation drives the end-to-end preprocessing run: load the
// train and test tables, fit the credit preprocessor on train only, transform
// both, append the target and persist the fitted preprocessor.
package transformation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/artifact"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/config"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/core"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/credit"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/data"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/logger"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/pipeline"
)

// Result is the output of one run. Train and Test hold the feature columns
// followed by the target as the last column.
type Result struct {
	Train        *core.Matrix
	Test         *core.Matrix
	ArtifactPath string
	FeatureNames []string
	FitID        string
}

// Columns returns the header of Train and Test.
func (r *Result) Columns() []string {
	return append(append([]string(nil), r.FeatureNames...), credit.TargetColumn)
}

type Orchestrator struct {
	cfg    config.Config
	loader data.Loader
	store  artifact.Store
	log    *logger.Logger
}

func New(cfg config.Config, loader data.Loader, store artifact.Store, log *logger.Logger) *Orchestrator {
	if cfg.ArtifactPath == "" {
		cfg.ArtifactPath = config.DefaultArtifactPath
	}
	if loader == nil {
		loader = data.CSVLoader{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{cfg: cfg, loader: loader, store: store, log: log.With("component", "DataTransformation")}
}

// Run loads the train and test tables concurrently and transforms them.
func (o *Orchestrator) Run(ctx context.Context, trainPath, testPath string) (*Result, error) {
	var train, test *data.Dataset
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if train, err = o.loader.Load(gctx, trainPath); err != nil {
			return fmt.Errorf("load train data: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if test, err = o.loader.Load(gctx, testPath); err != nil {
			return fmt.Errorf("load test data: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	o.log.Info("Read train and test data completed", "train_rows", train.Rows(), "test_rows", test.Rows())
	return o.RunDatasets(ctx, train, test)
}

// RunDatasets transforms already loaded tables. Nothing is persisted and no
// result is returned unless every step succeeds.
func (o *Orchestrator) RunDatasets(ctx context.Context, train, test *data.Dataset) (*Result, error) {
	trainX, trainY, err := split(train)
	if err != nil {
		return nil, fmt.Errorf("train data: %w", err)
	}
	testX, testY, err := split(test)
	if err != nil {
		return nil, fmt.Errorf("test data: %w", err)
	}

	preprocessor := credit.NewPreprocessor()
	o.log.Info("Data Transformation initiated", "features", preprocessor.OutputWidth())

	trainArr, err := preprocessor.FitTransform(trainX)
	if err != nil {
		return nil, fmt.Errorf("fit preprocessor: %w", err)
	}
	testArr, err := preprocessor.Transform(testX)
	if err != nil {
		return nil, fmt.Errorf("transform test data: %w", err)
	}
	log := o.log.With("fit_id", preprocessor.FitID())
	log.Info("Applying preprocessing object on training and testing datasets.")
	if trainArr.R > 0 {
		log.Debug("Train features head", "matrix", fmt.Sprintf("%.4v", mat.Formatted(trainArr, mat.Excerpt(3))))
	}

	if trainArr, err = trainArr.AppendColumn(trainY); err != nil {
		return nil, fmt.Errorf("append train target: %w", err)
	}
	if testArr, err = testArr.AppendColumn(testY); err != nil {
		return nil, fmt.Errorf("append test target: %w", err)
	}

	if err := o.save(ctx, preprocessor); err != nil {
		return nil, err
	}
	log.Info("Preprocessor saved", "path", o.cfg.ArtifactPath)

	return &Result{
		Train:        trainArr,
		Test:         testArr,
		ArtifactPath: o.cfg.ArtifactPath,
		FeatureNames: preprocessor.FeatureNames(),
		FitID:        preprocessor.FitID(),
	}, nil
}

func (o *Orchestrator) save(ctx context.Context, ct *pipeline.ColumnTransformer) error {
	blob, err := ct.MarshalBinary()
	if err != nil {
		return fmt.Errorf("serialize preprocessor: %w", err)
	}
	if err := o.store.Put(ctx, o.cfg.ArtifactPath, blob); err != nil {
		return fmt.Errorf("save preprocessor: %w", err)
	}
	return nil
}

// LoadTransformer reads a persisted preprocessor for inference-time use.
func LoadTransformer(ctx context.Context, store artifact.Store, location string) (*pipeline.ColumnTransformer, error) {
	blob, err := store.Get(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("load preprocessor: %w", err)
	}
	ct, err := pipeline.Load(blob)
	if err != nil {
		return nil, fmt.Errorf("load preprocessor %s: %w", location, err)
	}
	return ct, nil
}

func split(ds *data.Dataset) (*data.Dataset, []float64, error) {
	if err := ds.Require(append([]string{credit.TargetColumn}, credit.IDColumns...)...); err != nil {
		return nil, nil, err
	}
	y, err := credit.Target(ds)
	if err != nil {
		return nil, nil, err
	}
	x, err := credit.PrepareFeatures(ds)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
