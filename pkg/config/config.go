package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvArtifactPath overrides the artifact path from the environment.
const EnvArtifactPath = "PREP_ARTIFACT_PATH"

// DefaultArtifactPath is where the fitted preprocessor is written by default.
var DefaultArtifactPath = filepath.Join("artifacts", "preprocessor")

// Config is the transformation configuration. The artifact location is the
// only recognized option; it may be a filesystem path or gs://bucket/object.
type Config struct {
	ArtifactPath string `yaml:"artifact_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{ArtifactPath: DefaultArtifactPath}
}

// Load reads an optional YAML file and applies the environment override.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		var loaded Config
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&loaded); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		if loaded.ArtifactPath != "" {
			cfg.ArtifactPath = loaded.ArtifactPath
		}
	}

	if v := strings.TrimSpace(os.Getenv(EnvArtifactPath)); v != "" {
		cfg.ArtifactPath = v
	}
	return cfg, nil
}
