package rsablock

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/codec"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/logging"
	"github.com/hsiuhsiu/rsablock-go/pkg/rsablock/numtheory"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config carries the key parameters and runtime knobs of a Cipher.
//
// P and Q must be distinct primes supplied by the caller; primality is not
// checked. E must be coprime to (P−1)(Q−1).
type Config struct {
	P int64 `yaml:"p" validate:"required,gt=1"`
	Q int64 `yaml:"q" validate:"required,gt=1,nefield=P"`
	E int64 `yaml:"e" validate:"required,gt=1"`

	// Workers bounds the goroutines used per call. Zero uses GOMAXPROCS,
	// one keeps every call on the calling goroutine.
	Workers int `yaml:"workers" validate:"gte=0"`

	// LogLevel is one of debug, info, warn or error. Empty means info.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
}

// Validate checks the struct tags and the arithmetic preconditions of the
// key parameters. Every failure wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, formatValidationError(err))
	}

	if c.P > math.MaxInt64/c.Q {
		return fmt.Errorf("%w: p*q overflows int64", ErrInvalidConfig)
	}

	phi := (c.P - 1) * (c.Q - 1)
	if !numtheory.AreRelativelyPrime(c.E, phi) {
		return fmt.Errorf("%w: e=%d is not coprime to (p-1)(q-1)=%d", ErrInvalidConfig, c.E, phi)
	}

	if codec.BlockSize(c.P*c.Q) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, codec.ErrModulusTooSmall)
	}

	return nil
}

// Logger returns a JSON logger on w at the configured level.
func (c Config) Logger(w io.Writer) (logging.Logger, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return logging.NewJSON(w, level), nil
}

// LoadConfig reads and validates a YAML configuration file. Unknown keys are
// rejected.
func LoadConfig(path string) (*Config, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadConfig is LoadConfig without validation, for callers that override
// fields before validating.
func ReadConfig(path string) (*Config, error) {
	absPath, err := SecurePath(path)
	if err != nil {
		return nil, fmt.Errorf("secure path: %w", err)
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath validated by SecurePath
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return decodeConfig(data)
}

// ParseConfig decodes and validates YAML configuration bytes.
func ParseConfig(data []byte) (*Config, error) {
	cfg, err := decodeConfig(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty config", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("unmarshal YAML: %w", err)
	}
	return &cfg, nil
}

// SecurePath validates that a file path doesn't escape the working directory.
func SecurePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	e := validationErrs[0]
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "gt":
		return fmt.Errorf("%s: must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Errorf("%s: must be at least %s", field, e.Param())
	case "nefield":
		return fmt.Errorf("%s: must differ from %s", field, strings.ToLower(e.Param()))
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s]", field, e.Param())
	default:
		return fmt.Errorf("%s: failed %s validation", field, e.Tag())
	}
}
