package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"clipcut/internal/config"
	"clipcut/internal/job"
)

func newClipCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   `clip "<start> - <end>" <title>`,
		Short: "Append a new clip to the last video in the job file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := ctx.resolve(cmd, config.SubcommandClip)
			if err != nil {
				return err
			}
			if err := job.AppendClip(cfg.JobPath, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Appended clip %q (%s) to %s\n", args[1], args[0], cfg.JobPath)
			return nil
		},
	}
}
