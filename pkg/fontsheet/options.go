// Package fontsheet converts bitmap font descriptions into fixed-grid sprite sheets.
package fontsheet

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/ukaji3/fontsheet-go/pkg/fontsheet/encoding"
)

// Environment variables that supply option defaults.
const (
	EnvJISToSJIS = "FONTSHEET_JIS_TO_SJIS"
	EnvOffset    = "FONTSHEET_OFFSET"
)

// DefaultEnvFiles lists the env files tried, in order, when none is given.
var DefaultEnvFiles = []string{".env.local", ".env"}

// Options configures conversion behavior.
type Options struct {
	// JISToSJIS remaps JIS X 0208 row/column codes to Shift-JIS before layout.
	JISToSJIS bool
	// Offset moves the first grid cell this many codes before the smallest glyph code.
	Offset int
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

// Validate checks option values.
func (o Options) Validate() error {
	if o.Offset < 0 {
		return fmt.Errorf("offset must not be negative: %d", o.Offset)
	}
	return nil
}

// Remapper returns the code point remapping selected by the options.
func (o Options) Remapper() encoding.Remapper {
	return encoding.ForOptions(o.JISToSJIS)
}

// LoadEnvFile loads environment variables from path. With an empty path the
// first existing file of DefaultEnvFiles is loaded; finding none is not an
// error. Variables already set in the environment are kept. It returns the
// file that was loaded, if any.
func LoadEnvFile(path string) (string, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		return path, nil
	}

	for _, candidate := range DefaultEnvFiles {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return "", fmt.Errorf("failed to load env file %s: %w", candidate, err)
		}
		return candidate, nil
	}

	return "", nil
}

// OptionsFromEnv returns DefaultOptions overridden by FONTSHEET_* variables.
func OptionsFromEnv() (Options, error) {
	opts := DefaultOptions()

	if v, ok := os.LookupEnv(EnvJISToSJIS); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("%w: %s=%q", ErrInvalidOption, EnvJISToSJIS, v)
		}
		opts.JISToSJIS = b
	}

	if v, ok := os.LookupEnv(EnvOffset); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("%w: %s=%q", ErrInvalidOption, EnvOffset, v)
		}
		opts.Offset = n
	}

	return opts, nil
}

