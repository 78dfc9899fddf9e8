package config

const (
	defaultPrefsPath           = "~/.config/clipcut/config.toml"
	defaultJobPath             = "clip.yaml"
	defaultOutputDir           = "."
	defaultOutputExt           = "mkv"
	defaultVideoDir            = "."
	defaultVideoExt            = "mkv"
	defaultVideoFilenameFormat = "2006-01-02 15-04-05"
	defaultFFmpegBin           = "ffmpeg"
	defaultHistoryPath         = "~/.local/share/clipcut/history.db"
	defaultLogLevel            = "info"
	defaultLogFormat           = "console"
)

// DefaultPrefs returns the hard-coded preference defaults.
func DefaultPrefs() Prefs {
	return Prefs{
		JobPath:             defaultJobPath,
		OutputDir:           defaultOutputDir,
		OutputExt:           defaultOutputExt,
		VideoDir:            defaultVideoDir,
		VideoExt:            defaultVideoExt,
		VideoFilenameFormat: defaultVideoFilenameFormat,
		FFmpegBin:           defaultFFmpegBin,
		HistoryPath:         defaultHistoryPath,
		LogLevel:            defaultLogLevel,
		LogFormat:           defaultLogFormat,
	}
}
