package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/randalmurphal/urlgen/pkg/urlgen"
)

// Job describes one expansion run.
type Job struct {
	// Templates are expanded in order.
	Templates []string `yaml:"templates" json:"templates"`

	// EmptyPolicy is "quirk" (default) or "collapse".
	EmptyPolicy string `yaml:"empty_policy" json:"empty_policy"`

	// MaxResults caps each template's result set. Zero means unbounded.
	MaxResults int `yaml:"max_results" json:"max_results"`

	// LogLevel is one of debug, info, warn, error. Empty means info.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Store is the sqlite path batches are saved to. Empty disables saving.
	Store string `yaml:"store" json:"store"`
}

// Sentinel errors for job validation.
var (
	// ErrInvalidEmptyPolicy indicates an unknown empty_policy value.
	ErrInvalidEmptyPolicy = errors.New("invalid empty_policy")

	// ErrInvalidLogLevel indicates an unknown log_level value.
	ErrInvalidLogLevel = errors.New("invalid log_level")

	// ErrNegativeMaxResults indicates max_results < 0.
	ErrNegativeMaxResults = errors.New("max_results must not be negative")
)

// Validate checks the job's settings. An empty template list is valid.
func (j Job) Validate() error {
	var errs []error
	if _, ok := urlgen.ParseEmptyPolicy(j.EmptyPolicy); !ok {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidEmptyPolicy, j.EmptyPolicy))
	}
	if _, err := j.Level(); err != nil {
		errs = append(errs, err)
	}
	if j.MaxResults < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrNegativeMaxResults, j.MaxResults))
	}
	return errors.Join(errs...)
}

// Level parses LogLevel.
func (j Job) Level() (slog.Level, error) {
	switch strings.ToLower(j.LogLevel) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, j.LogLevel)
	}
}

// ExpanderOptions converts the job's settings to expander options.
// Invalid settings fall back to defaults; call Validate first to reject them.
func (j Job) ExpanderOptions() []urlgen.Option {
	policy, _ := urlgen.ParseEmptyPolicy(j.EmptyPolicy)
	return []urlgen.Option{
		urlgen.WithEmptyPolicy(policy),
		urlgen.WithMaxResults(j.MaxResults),
	}
}

// Merge returns j with every non-zero field of override applied.
// Templates are appended rather than replaced.
func (j Job) Merge(override Job) Job {
	out := j
	out.Templates = append(append([]string(nil), j.Templates...), override.Templates...)
	if override.EmptyPolicy != "" {
		out.EmptyPolicy = override.EmptyPolicy
	}
	if override.MaxResults != 0 {
		out.MaxResults = override.MaxResults
	}
	if override.LogLevel != "" {
		out.LogLevel = override.LogLevel
	}
	if override.Store != "" {
		out.Store = override.Store
	}
	return out
}
