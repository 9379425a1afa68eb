package pdfgen

import (
	"fmt"
	"os"

	"github.com/enerdocs/pdfgen/internal/yamlutil"
)

// Defaults mirror the original service layout.
const (
	DefaultListenAddr  = ":5000"
	DefaultResultsDir  = "results"
	DefaultFormatDir   = "format"
	DefaultTestDataDir = "test_data"
)

// Config holds service-level configuration.
type Config struct {
	ListenAddr  string `yaml:"listenAddr"`  // HTTP listen address
	ResultsDir  string `yaml:"resultsDir"`  // where generated PDFs are written
	FormatDir   string `yaml:"formatDir"`   // format PDFs and background artwork
	TestDataDir string `yaml:"testDataDir"` // JSON fixtures for CLI mode
}

// DefaultConfig returns the configuration used when no config file is
// supplied.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:  DefaultListenAddr,
		ResultsDir:  DefaultResultsDir,
		FormatDir:   DefaultFormatDir,
		TestDataDir: DefaultTestDataDir,
	}
}

// LoadConfig reads a YAML config file. Fields missing from the file
// keep their defaults; unknown fields are rejected. A missing file is
// an error, not a silent fallback.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}
