package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/randalmurphal/urlgen/pkg/urlgen/config"
)

var version = "0.1.0"

// newRootCmd builds the command tree. Each call gets its own viper instance
// so flags and URLGEN_* environment variables never leak between runs.
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("URLGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "urlgen",
		Short: "Expand URL templates with ranges and alternations",
		Long: `Expand templates such as https://example.com/[1-3]/page[01-10]?q={a|b}
into every URL they denote.

  [from-to]   inclusive numeric range; a leading zero in "from" pads to its width
  {a|b|...}   literal alternation

Every flag can also be set through the environment, e.g. URLGEN_MAX_RESULTS=1000.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return v.BindPFlags(cmd.Flags())
		},
	}

	root.PersistentFlags().String("config", "", "job file (.yaml, .yml or .json)")
	root.PersistentFlags().String("db", "", "sqlite database for saved batches")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default info)")

	root.AddCommand(newExpandCmd(v), newBatchesCmd(v))
	return root
}

// loadJob reads the job file, if any, and overlays flag and env settings.
func loadJob(v *viper.Viper, templates []string) (config.Job, error) {
	var job config.Job
	if path := v.GetString("config"); path != "" {
		var err error
		job, err = config.FromFile(path)
		if err != nil {
			return config.Job{}, err
		}
	}

	job = job.Merge(config.Job{
		Templates:   templates,
		EmptyPolicy: v.GetString("empty"),
		MaxResults:  v.GetInt("max-results"),
		LogLevel:    v.GetString("log-level"),
		Store:       v.GetString("db"),
	})
	if err := job.Validate(); err != nil {
		return config.Job{}, fmt.Errorf("invalid job: %w", err)
	}
	return job, nil
}

// newLogger returns a text logger on w at the job's level.
func newLogger(w io.Writer, job config.Job) *slog.Logger {
	level, _ := job.Level()
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
