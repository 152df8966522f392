package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the default configuration file name.
const FileName = "mobrank.toml"

// AppConfig is the application configuration.
type AppConfig struct {
	Output  OutputConfig  `toml:"output"`
	Input   InputConfig   `toml:"input"`
	Batch   BatchConfig   `toml:"batch"`
	History HistoryConfig `toml:"history"`
	Log     LogConfig     `toml:"log"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	Format   string `toml:"format"` // json, yaml or text
	Pretty   bool   `toml:"pretty"`
	Top      int    `toml:"top"`
	Language string `toml:"language"`
}

// InputConfig controls CSV loading.
type InputConfig struct {
	CSVDelimiter string `toml:"csv_delimiter"`
	CSVEncoding  string `toml:"csv_encoding"`
}

// BatchConfig controls multi-file analysis.
type BatchConfig struct {
	Workers int `toml:"workers"`
}

// HistoryConfig controls the run history database.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Output: OutputConfig{
			Format:   "text",
			Pretty:   true,
			Top:      10,
			Language: "pt-BR",
		},
		Input: InputConfig{
			CSVDelimiter: ";",
			CSVEncoding:  "auto",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		History: HistoryConfig{
			Enabled: false,
			Path:    "mobrank.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultPath returns mobrank.toml next to the executable.
func DefaultPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, FileName)
}

// Load reads the configuration at path on top of the defaults.
// An empty path means DefaultPath(); a missing file yields the defaults.
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// no config file, keep defaults
	default:
		return nil, err
	}

	// Environment overrides
	if v := os.Getenv("MOBRANK_HISTORY_PATH"); v != "" {
		cfg.History.Path = v
	}
	if v := os.Getenv("MOBRANK_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *AppConfig) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "json", "yaml", "text":
	default:
		return fmt.Errorf("invalid output format %q (must be json, yaml or text)", c.Output.Format)
	}
	switch strings.ToLower(c.Input.CSVEncoding) {
	case "", "auto", "utf-8", "utf8", "windows-1252", "cp1252", "latin1":
	default:
		return fmt.Errorf("invalid csv encoding %q", c.Input.CSVEncoding)
	}
	if len([]rune(c.Input.CSVDelimiter)) > 1 {
		return fmt.Errorf("csv delimiter must be a single character, got %q", c.Input.CSVDelimiter)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("batch workers must not be negative")
	}
	return nil
}

// Save writes the configuration as TOML.
func Save(cfg *AppConfig, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
