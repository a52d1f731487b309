package main

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/randalmurphal/urlgen/pkg/urlgen"
	"github.com/randalmurphal/urlgen/pkg/urlgen/observability"
	"github.com/randalmurphal/urlgen/pkg/urlgen/store"
)

var errNoTemplates = errors.New("no templates given; pass them as arguments or in the job file")

func newExpandCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand [template...]",
		Short: "Print every URL a template denotes",
		Long: `Print every URL each template denotes, one per line.

Templates from the command line are appended to those in the job file.
With --save, each template's results are stored as a batch in --db and the
batch ID is logged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := loadJob(v, args)
			if err != nil {
				return err
			}
			if len(job.Templates) == 0 {
				return errNoTemplates
			}

			logger := newLogger(cmd.ErrOrStderr(), job)
			metrics := observability.NewMetricsRecorder()
			exp := urlgen.New(append(job.ExpanderOptions(),
				urlgen.WithLogger(logger),
				urlgen.WithMetrics(metrics),
				urlgen.WithSpanManager(observability.NewSpanManager()),
			)...)

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()

			if v.GetBool("count") {
				for _, t := range job.Templates {
					n, err := exp.Count(t)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%d\t%s\n", n, t)
				}
				return nil
			}

			var db store.Store
			if v.GetBool("save") {
				if job.Store == "" {
					return errors.New("--save requires --db or a store in the job file")
				}
				sqlite, err := store.NewSQLiteStore(job.Store)
				if err != nil {
					return err
				}
				defer sqlite.Close()
				db = sqlite
			}

			ctx := cmd.Context()
			for _, t := range job.Templates {
				urls, err := exp.Expand(ctx, t)
				if err != nil {
					return err
				}
				for _, u := range urls {
					fmt.Fprintln(out, u)
				}

				if db == nil {
					continue
				}
				batch := store.NewBatch(t, urls)
				if err := db.Save(ctx, batch); err != nil {
					return fmt.Errorf("save batch for %q: %w", t, err)
				}
				metrics.RecordBatchSaved(ctx, "sqlite", len(urls))
				logger.Info("batch saved", "batch_id", batch.ID, "template", t, "urls", len(urls))
			}
			return nil
		},
	}

	cmd.Flags().String("empty", "", "empty range policy: quirk or collapse (default quirk)")
	cmd.Flags().Int("max-results", 0, "fail when a template would produce more results (0 = unbounded)")
	cmd.Flags().Bool("count", false, "print result counts instead of results")
	cmd.Flags().Bool("save", false, "store each template's results as a batch in --db")
	return cmd
}
