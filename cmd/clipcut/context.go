package main

import (
	"log/slog"
	"sync"

	"github.com/spf13/cobra"

	"clipcut/internal/config"
	"clipcut/internal/logging"
)

type persistentFlags struct {
	prefsPath           string
	videoDir            string
	jobPath             string
	outputDir           string
	outputExt           string
	videoExt            string
	videoFilenameFormat string
	ffmpegBin           string
	historyPath         string
	logLevel            string
	logFormat           string
	filenameReplace     []string
}

// commandContext resolves the configuration and logger exactly once per
// invocation, after flag parsing.
type commandContext struct {
	flags persistentFlags

	once   sync.Once
	cfg    *config.Config
	logger *slog.Logger
	err    error
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

func (c *commandContext) resolve(cmd *cobra.Command, sub config.Subcommand) (*config.Config, *slog.Logger, error) {
	c.once.Do(func() {
		prefs, _, _, err := config.LoadPrefs(c.flags.prefsPath)
		if err != nil {
			c.err = err
			return
		}

		flagSet := cmd.Flags()
		changed := func(name string, value *string) *string {
			if flagSet.Changed(name) {
				return value
			}
			return nil
		}

		cfg, err := config.Resolve(sub, prefs, config.Overrides{
			JobPath:             changed("job-path", &c.flags.jobPath),
			OutputDir:           changed("output-dir", &c.flags.outputDir),
			OutputExt:           changed("output-ext", &c.flags.outputExt),
			VideoDir:            changed("video-dir", &c.flags.videoDir),
			VideoExt:            changed("video-ext", &c.flags.videoExt),
			VideoFilenameFormat: changed("video-filename-format", &c.flags.videoFilenameFormat),
			FFmpegBin:           changed("ffmpeg-bin", &c.flags.ffmpegBin),
			HistoryPath:         changed("history-path", &c.flags.historyPath),
			LogLevel:            changed("log-level", &c.flags.logLevel),
			LogFormat:           changed("log-format", &c.flags.logFormat),
			FilenameReplace:     c.flags.filenameReplace,
		})
		if err != nil {
			c.err = err
			return
		}

		logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
		if err != nil {
			c.err = err
			return
		}

		c.cfg = cfg
		c.logger = logger
	})
	return c.cfg, c.logger, c.err
}
