// Package config defines the inputs envheader reads from the environment.
//
// The process environment is read exactly once, in Load, and the resulting
// Config is passed to the generator explicitly.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the five optional header inputs. An unset variable is "".
type Config struct {
	// FileLogging enables `#define FILE_LOGGING 1` when it equals "yes" (any case).
	FileLogging string `env:"FILE_LOGGING"`

	// FileSize is a size literal such as "10MB"; see package size.
	FileSize string `env:"FILE_SIZE"`

	// LogFilePath is the directory log files are written to.
	LogFilePath string `env:"LOG_FILE_PATH"`

	// LogFileName is the base name of the log file.
	LogFileName string `env:"LOG_FILE_NAME"`

	// LogFileExtn is the log file extension, with or without the leading dot.
	LogFileExtn string `env:"LOG_FILE_EXTN"`
}

// LoggingEnabled reports whether FILE_LOGGING requests file logging.
func (c Config) LoggingEnabled() bool {
	return strings.ToLower(c.FileLogging) == "yes"
}

// Load reads Config from the process environment. If envFile is non-empty
// its KEY=VALUE pairs are used as a base layer; non-empty variables in the
// process environment take precedence. A variable exported as "" does not
// clear a value from envFile. The process environment is not modified.
func Load(envFile string) (Config, error) {
	vars := map[string]string{}
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil {
			return Config{}, fmt.Errorf("read env file %s: %w", envFile, err)
		}
		vars = fileVars
	}
	for k, v := range env.ToMap(os.Environ()) {
		if v == "" {
			continue
		}
		vars[k] = v
	}
	return FromMap(vars)
}

// FromMap parses Config from an explicit environment map.
func FromMap(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
