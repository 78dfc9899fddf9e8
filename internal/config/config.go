package config

import (
	"fmt"
	"strings"

	"clipcut/internal/faults"
	"clipcut/internal/replace"
)

// Subcommand selects the program execution type.
type Subcommand int

const (
	// SubcommandHelp shows program usage and exits.
	SubcommandHelp Subcommand = iota
	// SubcommandClip appends a new clip to the job file.
	SubcommandClip
	// SubcommandRun executes the job file to produce clips.
	SubcommandRun
	// SubcommandHistory lists past extraction records.
	SubcommandHistory
)

// String returns the CLI token for the subcommand.
func (s Subcommand) String() string {
	switch s {
	case SubcommandClip:
		return "clip"
	case SubcommandRun:
		return "run"
	case SubcommandHistory:
		return "history"
	default:
		return "help"
	}
}

// Config is the resolved, immutable configuration for one invocation.
type Config struct {
	Subcommand          Subcommand
	JobPath             string
	FilenameReplace     replace.Map
	OutputDir           string
	OutputExt           string
	VideoDir            string
	VideoExt            string
	VideoFilenameFormat string
	FFmpegBin           string
	HistoryPath         string
	LogLevel            string
	LogFormat           string
}

// Overrides carries the command-line values layered on top of Prefs.
// A nil field means the flag was not given. FilenameReplace collects the raw
// -r/--filename-replace arguments in the order they appeared.
type Overrides struct {
	JobPath             *string
	OutputDir           *string
	OutputExt           *string
	VideoDir            *string
	VideoExt            *string
	VideoFilenameFormat *string
	FFmpegBin           *string
	HistoryPath         *string
	LogLevel            *string
	LogFormat           *string
	FilenameReplace     []string
}

// Resolve layers overrides over prefs and returns the final configuration.
func Resolve(sub Subcommand, prefs Prefs, ov Overrides) (*Config, error) {
	replaceMap, err := prefs.ReplaceMap()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Subcommand:          sub,
		JobPath:             prefs.JobPath,
		FilenameReplace:     replaceMap,
		OutputDir:           prefs.OutputDir,
		OutputExt:           prefs.OutputExt,
		VideoDir:            prefs.VideoDir,
		VideoExt:            prefs.VideoExt,
		VideoFilenameFormat: prefs.VideoFilenameFormat,
		FFmpegBin:           prefs.FFmpegBin,
		HistoryPath:         prefs.HistoryPath,
		LogLevel:            prefs.LogLevel,
		LogFormat:           prefs.LogFormat,
	}

	overrides := []struct {
		flag  string
		value *string
		field *string
	}{
		{"--job-path", ov.JobPath, &cfg.JobPath},
		{"--output-dir", ov.OutputDir, &cfg.OutputDir},
		{"--output-ext", ov.OutputExt, &cfg.OutputExt},
		{"--video-dir", ov.VideoDir, &cfg.VideoDir},
		{"--video-ext", ov.VideoExt, &cfg.VideoExt},
		{"--video-filename-format", ov.VideoFilenameFormat, &cfg.VideoFilenameFormat},
		{"--ffmpeg-bin", ov.FFmpegBin, &cfg.FFmpegBin},
		{"--log-level", ov.LogLevel, &cfg.LogLevel},
		{"--log-format", ov.LogFormat, &cfg.LogFormat},
	}
	for _, o := range overrides {
		if o.value == nil {
			continue
		}
		if *o.value == "" {
			return nil, faults.Wrap(faults.ErrValidation, "config", o.flag, "value cannot be empty", nil)
		}
		*o.field = *o.value
	}

	// History may be disabled outright with an empty path.
	if ov.HistoryPath != nil {
		cfg.HistoryPath = *ov.HistoryPath
	}

	for _, arg := range ov.FilenameReplace {
		edited, err := applyReplaceArg(cfg.FilenameReplace, replaceMap, arg)
		if err != nil {
			return nil, err
		}
		cfg.FilenameReplace = edited
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	return cfg, nil
}

// applyReplaceArg processes one -r argument: "key=value" adds or overwrites
// a rule, "==value" maps the literal key "=", and an empty argument resets
// the map to the preferences default.
func applyReplaceArg(current, prefsDefault replace.Map, arg string) (replace.Map, error) {
	switch {
	case arg == "":
		return prefsDefault, nil
	case strings.HasPrefix(arg, "=="):
		return current.With("=", arg[2:])
	case strings.HasPrefix(arg, "="):
		return replace.Map{}, faults.Wrap(faults.ErrValidation, "config", "--filename-replace",
			fmt.Sprintf("invalid replacement %q", arg), nil)
	case strings.Contains(arg, "="):
		key, value, _ := strings.Cut(arg, "=")
		return current.With(key, value)
	default:
		return replace.Map{}, faults.Wrap(faults.ErrValidation, "config", "--filename-replace",
			fmt.Sprintf("invalid replacement %q", arg), nil)
	}
}
