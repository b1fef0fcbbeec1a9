package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Loader    LoaderConfig    `json:"loader"`
	Composite CompositeConfig `json:"composite"`
	Output    OutputConfig    `json:"output"`
}

// LoaderConfig holds limits for bitmap loading
type LoaderConfig struct {
	MinImageSize int `json:"min_image_size"`
}

// CompositeConfig holds configuration for composite rendering
type CompositeConfig struct {
	Format     string `json:"format"` // png or webp, both lossless
	DateFormat string `json:"date_format"`
}

// OutputConfig holds configuration for output file naming
type OutputConfig struct {
	OutputDir string `json:"output_dir"`
	Prefix    string `json:"prefix"`
	Suffix    string `json:"suffix"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Loader: LoaderConfig{
			MinImageSize: 1,
		},
		Composite: CompositeConfig{
			Format:     "png",
			DateFormat: "2006-01-02 15:04",
		},
		Output: OutputConfig{
			OutputDir: "./output",
			Prefix:    "",
			Suffix:    "_report",
		},
	}
}

// Load resolves the effective configuration: defaults, then the config file
// named by DEFECTDOC_CONFIG (or the default path) when present, then
// environment overrides. A .env file in the working directory is honored.
func Load() (*Config, error) {
	_ = godotenv.Load()

	path := os.Getenv("DEFECTDOC_CONFIG")
	if path == "" {
		path = GetConfigPath()
	}

	cfg := Default()
	if _, err := os.Stat(path); err == nil {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DEFECTDOC_OUTPUT_DIR"); v != "" {
		cfg.Output.OutputDir = v
	}
	if v := os.Getenv("DEFECTDOC_FORMAT"); v != "" {
		cfg.Composite.Format = v
	}
	if v := os.Getenv("DEFECTDOC_DATE_FORMAT"); v != "" {
		cfg.Composite.DateFormat = v
	}
	if v := os.Getenv("DEFECTDOC_MIN_IMAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Loader.MinImageSize = n
		}
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Loader.MinImageSize < 1 {
		return fmt.Errorf("loader.min_image_size must be positive")
	}

	if c.Composite.Format != "png" && c.Composite.Format != "webp" {
		return fmt.Errorf("composite.format must be png or webp (lossless output)")
	}

	if c.Composite.DateFormat == "" {
		return fmt.Errorf("composite.date_format cannot be empty")
	}

	if c.Output.OutputDir == "" {
		return fmt.Errorf("output.output_dir cannot be empty")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "defectdoc", "config.json")
}
