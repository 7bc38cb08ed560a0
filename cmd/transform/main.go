package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/artifact"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/config"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/core"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/data"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/logger"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/report"
	"github.com/SHIVAAAAY28/project-default-credit-card/pkg/transformation"
)

//
// ---------------------- CLI FLAGS DOCUMENTATION ----------------------
//
// --train      : Path to the training CSV
// --test       : Path to the evaluation CSV
// --input      : Single raw CSV to split into train/test (instead of --train/--test)
// --test-ratio : Fraction of --input rows used for test. Default = 0.3
// --seed       : Seed of the --input split. Default = 42
// --config     : Optional YAML config (artifact_path)
// --artifact   : Artifact location, overrides config. Path or gs://bucket/object
// --out        : Directory for train.csv / test.csv. Empty = do not write
// --plot       : Write a box plot of the transformed train features to this file
//
// Example:
//   go run ./cmd/transform --train artifacts/train.csv --test artifacts/test.csv --out artifacts
//
// LOG_MODE=prod switches to JSON logs.
// ---------------------------------------------------------------------
//

func main() {
	trainPath := flag.String("train", "", "Path to training CSV")
	testPath := flag.String("test", "", "Path to test CSV")
	inputPath := flag.String("input", "", "Single raw CSV to split into train/test")
	testRatio := flag.Float64("test-ratio", 0.3, "Fraction of --input rows used for test")
	seed := flag.Int64("seed", 42, "Seed for the --input split")
	configPath := flag.String("config", "", "Optional YAML config file")
	artifactPath := flag.String("artifact", "", "Artifact location (overrides config)")
	outDir := flag.String("out", "", "Directory to write transformed train.csv and test.csv")
	plotPath := flag.String("plot", "", "Write a box plot of the transformed train features")
	flag.Parse()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	if *artifactPath != "" {
		cfg.ArtifactPath = *artifactPath
	}

	ctx := context.Background()
	orch := transformation.New(cfg, data.CSVLoader{}, artifact.NewRouter(), log)

	var res *transformation.Result
	switch {
	case *inputPath != "":
		res, err = runSplit(ctx, orch, *inputPath, *testRatio, *seed)
	case *trainPath != "" && *testPath != "":
		res, err = orch.Run(ctx, *trainPath, *testPath)
	default:
		fmt.Fprintln(os.Stderr, "either --input or both --train and --test are required")
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error("data transformation failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Train matrix: %d x %d\n", res.Train.R, res.Train.C)
	fmt.Printf("Test matrix:  %d x %d\n", res.Test.R, res.Test.C)
	fmt.Println("Preprocessor saved to:", res.ArtifactPath)

	if *outDir != "" {
		if err := writeMatrices(*outDir, res); err != nil {
			log.Error("write matrices", "error", err)
			os.Exit(1)
		}
		fmt.Println("Processed data saved to:", *outDir)
	}
	if *plotPath != "" {
		features, err := featuresOnly(res.Train)
		if err == nil {
			err = report.BoxPlot(features, res.FeatureNames, "Transformed train features", *plotPath)
		}
		if err != nil {
			log.Error("plot features", "error", err)
			os.Exit(1)
		}
		fmt.Println("Saved feature plot to", *plotPath)
	}
}

func runSplit(ctx context.Context, orch *transformation.Orchestrator, path string, ratio float64, seed int64) (*transformation.Result, error) {
	raw, err := data.CSVLoader{}.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	train, test, err := data.TrainTestSplit(raw, ratio, seed)
	if err != nil {
		return nil, err
	}
	return orch.RunDatasets(ctx, train, test)
}

func writeMatrices(dir string, res *transformation.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, m := range map[string]*core.Matrix{"train.csv": res.Train, "test.csv": res.Test} {
		if err := writeFile(filepath.Join(dir, name), m, res.Columns()); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, m *core.Matrix, header []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := data.WriteCSV(f, m, header); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// featuresOnly strips the trailing target column.
func featuresOnly(m *core.Matrix) (*core.Matrix, error) {
	if m.C == 0 {
		return nil, fmt.Errorf("matrix has no columns")
	}
	cols := make([][]float64, m.C-1)
	for j := range cols {
		cols[j] = m.ColSlice(j)
	}
	return core.FromColumns(m.R, cols)
}
