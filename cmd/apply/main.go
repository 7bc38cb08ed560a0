package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/artifact"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/config"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/credit"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/data"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/logger"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/transformation"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --artifact : Fitted preprocessor. Path or gs://bucket/object.
//              Default = $PREP_ARTIFACT_PATH, then artifacts/preprocessor
// --input    : Raw CSV in the training schema (target column optional)
// --output   : Where to write the transformed features. Empty = stdout
//
// Example:
//   go run ./cmd/apply --input new_clients.csv --output features.csv
// ---------------------------------------------------------------------
//

func main() {
	artifactPath := flag.String("artifact", "", "Fitted preprocessor location")
	inputPath := flag.String("input", "", "Raw CSV to transform")
	outputPath := flag.String("output", "", "Output CSV (default stdout)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "--input is required")
		flag.Usage()
		os.Exit(2)
	}

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load("")
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	if *artifactPath != "" {
		cfg.ArtifactPath = *artifactPath
	}

	if err := apply(context.Background(), cfg.ArtifactPath, *inputPath, *outputPath, log); err != nil {
		log.Error("apply preprocessor", "error", err)
		os.Exit(1)
	}
}

func apply(ctx context.Context, artifactPath, inputPath, outputPath string, log *logger.Logger) error {
	ct, err := transformation.LoadTransformer(ctx, artifact.NewRouter(), artifactPath)
	if err != nil {
		return err
	}
	log = log.With("fit_id", ct.FitID())

	raw, err := data.CSVLoader{}.Load(ctx, inputPath)
	if err != nil {
		return err
	}
	feats, err := credit.PrepareFeatures(raw)
	if err != nil {
		return err
	}
	m, err := ct.Transform(feats)
	if err != nil {
		return err
	}
	log.Info("Transformed input", "rows", m.R, "features", m.C)

	out := os.Stdout
	if outputPath != "" {
		if out, err = os.Create(outputPath); err != nil {
			return err
		}
		defer out.Close()
	}
	return data.WriteCSV(out, m, ct.FeatureNames())
}
