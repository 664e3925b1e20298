package svg2png

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// EnvDPI is the environment variable holding the output resolution.
	EnvDPI = "DPI"
	// DefaultDPI is used when EnvDPI is unset or empty.
	DefaultDPI = "300"
	// DefaultOutputDir is the directory, relative to the input directory,
	// receiving the rendered images.
	DefaultOutputDir = "png"

	// InputExt and OutputExt are the source and destination file suffixes.
	InputExt  = ".svg"
	OutputExt = ".png"
)

// Config holds the settings of a conversion run. It is resolved once at
// startup and passed down to the batch driver.
type Config struct {
	// DPI is kept as provided by the user and handed to the renderer verbatim.
	DPI       string
	InputDir  string
	OutputDir string
	Sort      bool
}

// LoadConfig resolves the run configuration. getenv is usually os.Getenv.
func LoadConfig(getenv func(string) string) (*Config, error) {
	dpi := getenv(EnvDPI)
	if dpi == "" {
		dpi = DefaultDPI
	}
	if _, err := ParseDPI(dpi); err != nil {
		return nil, err
	}

	return &Config{
		DPI:       dpi,
		InputDir:  ".",
		OutputDir: DefaultOutputDir,
	}, nil
}

// ParseDPI returns the numeric value of a resolution setting. Only finite
// decimal numbers are accepted: NaN, Inf and hex floats are rejected.
func ParseDPI(dpi string) (float64, error) {
	if strings.ContainsAny(dpi, "xX_") {
		return 0, fmt.Errorf("invalid %s value %q: not a decimal number", EnvDPI, dpi)
	}
	v, err := strconv.ParseFloat(dpi, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid %s value %q: not a number", EnvDPI, dpi)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be positive", EnvDPI, dpi)
	}
	return v, nil
}
