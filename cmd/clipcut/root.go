package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cobra.EnableCaseInsensitive = true

	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:   "clipcut",
		Short: "Cut lossless clips out of recorded videos",
		Long: `clipcut reads a YAML job file describing recorded videos and the clips to
cut from them, derives deterministic output filenames, and extracts each clip
with ffmpeg using stream copy (no re-encoding).

Settings resolve in precedence order: command-line flags override the
preferences file, which overrides built-in defaults. Directory fields in the
job file override both.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.flags.prefsPath, "config", "c", "", "Preferences file path")
	flags.StringVarP(&ctx.flags.videoDir, "video-dir", "i", "", "Directory containing source recordings")
	flags.StringVarP(&ctx.flags.jobPath, "job-path", "j", "", "Path to the job file")
	flags.StringVarP(&ctx.flags.outputDir, "output-dir", "o", "", "Directory to write clips to")
	flags.StringArrayVarP(&ctx.flags.filenameReplace, "filename-replace", "r", nil,
		"Filename replacement rule (key=value; ==value maps a literal '='; an empty value resets to the preferences rules)")
	flags.StringVar(&ctx.flags.outputExt, "output-ext", "", "Output clip file extension")
	flags.StringVar(&ctx.flags.videoExt, "video-ext", "", "Source video file extension")
	flags.StringVar(&ctx.flags.videoFilenameFormat, "video-filename-format", "",
		"Source filename time format (Go reference time)")
	flags.StringVar(&ctx.flags.ffmpegBin, "ffmpeg-bin", "", "ffmpeg binary name or path")
	flags.StringVar(&ctx.flags.historyPath, "history-path", "", "History database path (empty disables recording)")
	flags.StringVar(&ctx.flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flags.StringVar(&ctx.flags.logFormat, "log-format", "", "Log format (console, json)")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newClipCommand(ctx))
	rootCmd.AddCommand(newHistoryCommand(ctx))

	return rootCmd
}
