package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/randalmurphal/urlgen/pkg/urlgen/store"
)

func newBatchesCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batches",
		Short: "Inspect batches saved with expand --save",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List saved batches",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withStore(v, func(db store.Store) error {
					infos, err := db.List(cmd.Context())
					if err != nil {
						return err
					}
					tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "ID\tURLS\tCREATED\tTEMPLATE")
					for _, info := range infos {
						fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
							info.ID, info.Count, info.CreatedAt.Format(time.RFC3339), info.Template)
					}
					return tw.Flush()
				})
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Print the URLs of a saved batch",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(v, func(db store.Store) error {
					b, err := db.Load(cmd.Context(), args[0])
					if err != nil {
						return err
					}
					for _, u := range b.URLs {
						fmt.Fprintln(cmd.OutOrStdout(), u)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a saved batch",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withStore(v, func(db store.Store) error {
					return db.Delete(cmd.Context(), args[0])
				})
			},
		},
	)
	return cmd
}

// withStore opens the configured sqlite store for the duration of fn.
func withStore(v *viper.Viper, fn func(store.Store) error) error {
	job, err := loadJob(v, nil)
	if err != nil {
		return err
	}
	if job.Store == "" {
		return errors.New("no store configured; pass --db or set store in the job file")
	}

	db, err := store.NewSQLiteStore(job.Store)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}
