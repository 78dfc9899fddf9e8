package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipcut/internal/config"
	"clipcut/internal/deps"
	"clipcut/internal/extract"
	"clipcut/internal/history"
	"clipcut/internal/job"
	"clipcut/internal/runner"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the job file to process videos and produce clips",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.resolve(cmd, config.SubcommandRun)
			if err != nil {
				return err
			}

			j, err := job.Load(cfg.JobPath, cfg)
			if err != nil {
				return err
			}

			if dryRun {
				entries := runner.New(cfg, nil, nil, logger).Plan(j)
				fmt.Fprintln(cmd.OutOrStdout(), renderPlanTable(entries))
				return nil
			}

			if err := deps.CheckBinary(cfg.FFmpegBin); err != nil {
				return err
			}

			var ledger *history.Store
			if cfg.HistoryPath != "" {
				ledger, err = history.Open(cfg.HistoryPath)
				if err != nil {
					return err
				}
				defer ledger.Close()
			}

			r := runner.New(cfg, extract.NewFFmpeg(cfg.FFmpegBin), ledger, logger)
			summary, err := r.Run(cmd.Context(), j)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d clip(s), skipped %d already present\n",
				summary.Completed, summary.Skipped)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the extraction plan without invoking ffmpeg")
	return cmd
}
