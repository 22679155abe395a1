package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries every tunable the engine reads. It is built once and handed
// to the components at construction time; nothing consults package-level
// defaults at run time.
type Config struct {
	// ExcludePatterns are path substrings that drop a file from selection.
	ExcludePatterns []string `yaml:"exclude_patterns"`
	// IgnoreFile names an optional glob-pattern file relative to the root.
	IgnoreFile string `yaml:"ignore_file"`

	// StaleThresholdDays is the age before a file is scored for staleness.
	StaleThresholdDays int `yaml:"stale_threshold_days"`
	// StaleScorer selects the scoring formula: "reference" or "weighted".
	StaleScorer string `yaml:"stale_scorer"`

	// ReportMaxLines bounds the CODEBASE.md output.
	ReportMaxLines int `yaml:"report_max_lines"`

	Embeddings EmbedConfig `yaml:"embeddings"`
}

// EmbedConfig configures the optional chunking/vector pipeline.
type EmbedConfig struct {
	// ModelPath is the local directory holding the ONNX embedding model.
	ModelPath string `yaml:"model_path"`
	// ORTLibraryPath points at the onnxruntime shared library directory.
	// Empty means probe the usual install locations.
	ORTLibraryPath string `yaml:"ort_library_path"`
	// StorePath is the sqlite database holding chunk vectors.
	StorePath string `yaml:"store_path"`
}

// Default returns the engine defaults. The exclusion list covers build
// artifacts, VCS metadata, virtual environments, caches, and the archive
// directory.
func Default() Config {
	return Config{
		ExcludePatterns: []string{
			"__pycache__",
			".git",
			".venv",
			"venv",
			"node_modules",
			".pytest_cache",
			".mypy_cache",
			".ruff_cache",
			".egg-info",
			"dist",
			"build",
			".tox",
			".coverage",
			"htmlcov",
			".archive",
		},
		IgnoreFile:         ".indexignore",
		StaleThresholdDays: 180,
		StaleScorer:        "reference",
		ReportMaxLines:     500,
	}
}

// Load overlays the YAML file at path onto the defaults. A missing file is
// not an error; malformed YAML is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
