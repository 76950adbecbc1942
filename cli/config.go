package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"

	"github.com/shibukawa/combinator/calc"
)

// Config represents the cmbcalc configuration
type Config struct {
	Precision int32        `yaml:"precision"`
	Output    OutputConfig `yaml:"output"`
}

// OutputConfig represents output settings
type OutputConfig struct {
	NoColor bool `yaml:"no_color"`
}

// LoadConfig loads configuration from the specified file
func LoadConfig(configPath string) (*Config, error) {
	// Load .env files first
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("failed to load environment files: %w", err)
	}

	config := defaultConfig()

	if _, err := os.Stat(configPath); err == nil {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(config)

	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFiles loads .env files if they exist
func loadEnvFiles() error {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	return nil
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		Precision: calc.DefaultDivisionPrecision,
	}
}

// applyDefaults applies defaults for missing values
func applyDefaults(config *Config) {
	if config.Precision <= 0 {
		config.Precision = calc.DefaultDivisionPrecision
	}
}

// applyEnvOverrides applies environment variable overrides
func applyEnvOverrides(config *Config) error {
	if v := os.Getenv("CMBCALC_PRECISION"); v != "" {
		precision, err := strconv.ParseInt(v, 10, 32)
		if err != nil || precision <= 0 {
			return fmt.Errorf("%w: CMBCALC_PRECISION=%q", ErrInvalidPrecision, v)
		}

		config.Precision = int32(precision)
	}

	return nil
}
