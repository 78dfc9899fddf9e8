package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipcut/internal/config"
	"clipcut/internal/faults"
	"clipcut/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent clip extraction records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := ctx.resolve(cmd, config.SubcommandHistory)
			if err != nil {
				return err
			}
			if cfg.HistoryPath == "" {
				return faults.Wrap(faults.ErrValidation, "history", "", "history recording is disabled", nil)
			}

			store, err := history.Open(cfg.HistoryPath)
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No extraction records yet")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderHistoryTable(records))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of records to show")
	return cmd
}
