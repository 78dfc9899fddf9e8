package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"clipcut/internal/faults"
	"clipcut/internal/replace"
)

// ReplaceRule is one ordered filename substitution entry in the preferences
// file. An array of tables keeps rule order explicit in the document.
type ReplaceRule struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

// Prefs holds the user-overridable defaults. All fields have hard-coded
// defaults; a preferences file only needs the keys it wants to change.
type Prefs struct {
	FilenameReplace     []ReplaceRule `toml:"filename-replace"`
	JobPath             string        `toml:"job-path"`
	OutputDir           string        `toml:"output-dir"`
	OutputExt           string        `toml:"output-ext"`
	VideoDir            string        `toml:"video-dir"`
	VideoExt            string        `toml:"video-ext"`
	VideoFilenameFormat string        `toml:"video-filename-format"`
	FFmpegBin           string        `toml:"ffmpeg-bin"`
	HistoryPath         string        `toml:"history-path"`
	LogLevel            string        `toml:"log-level"`
	LogFormat           string        `toml:"log-format"`
}

// DefaultPrefsPath returns the expanded default preferences file location.
func DefaultPrefsPath() (string, error) {
	return expandPath(defaultPrefsPath)
}

// LoadPrefs locates, parses, and validates the preferences file. A missing
// file yields the defaults. Unknown keys are rejected by name. The returned
// path is the location that was consulted; exists reports whether a file was
// actually read.
func LoadPrefs(path string) (Prefs, string, bool, error) {
	prefs := DefaultPrefs()

	resolved, exists, err := resolvePrefsPath(path)
	if err != nil {
		return Prefs{}, "", false, err
	}

	if exists {
		file, err := os.Open(resolved)
		if err != nil {
			return Prefs{}, "", false, fmt.Errorf("open preferences: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&prefs); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return Prefs{}, "", false, faults.Wrap(faults.ErrValidation, "preferences", resolved,
					"unknown keys:\n"+strict.String(), nil)
			}
			return Prefs{}, "", false, faults.Wrap(faults.ErrValidation, "preferences", resolved, "", err)
		}
	}

	if err := prefs.normalize(); err != nil {
		return Prefs{}, "", false, err
	}
	if err := prefs.validate(); err != nil {
		return Prefs{}, "", false, err
	}
	return prefs, resolved, exists, nil
}

func resolvePrefsPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		expanded, err := expandPath(defaultPrefsPath)
		if err != nil {
			return "", false, err
		}
		path = expanded
	} else {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		path = expanded
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		return path, !info.IsDir(), nil
	case errors.Is(err, fs.ErrNotExist):
		return path, false, nil
	default:
		return "", false, fmt.Errorf("stat preferences: %w", err)
	}
}

func (p *Prefs) normalize() error {
	expanded, err := expandPath(p.HistoryPath)
	if err != nil {
		return err
	}
	p.HistoryPath = expanded
	p.LogLevel = strings.ToLower(strings.TrimSpace(p.LogLevel))
	p.LogFormat = strings.ToLower(strings.TrimSpace(p.LogFormat))
	return nil
}

func (p Prefs) validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"job-path", p.JobPath},
		{"output-dir", p.OutputDir},
		{"output-ext", p.OutputExt},
		{"video-dir", p.VideoDir},
		{"video-ext", p.VideoExt},
		{"video-filename-format", p.VideoFilenameFormat},
		{"ffmpeg-bin", p.FFmpegBin},
	}
	for _, field := range required {
		if field.value == "" {
			return faults.Wrap(faults.ErrValidation, "preferences", field.key, "value cannot be empty", nil)
		}
	}
	if _, err := p.ReplaceMap(); err != nil {
		return err
	}
	switch p.LogFormat {
	case "console", "json":
	default:
		return faults.Wrap(faults.ErrValidation, "preferences", "log-format",
			fmt.Sprintf("unsupported value %q", p.LogFormat), nil)
	}
	switch p.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return faults.Wrap(faults.ErrValidation, "preferences", "log-level",
			fmt.Sprintf("unsupported value %q", p.LogLevel), nil)
	}
	return nil
}

// ReplaceMap materializes the filename-replace rules as an ordered map.
func (p Prefs) ReplaceMap() (replace.Map, error) {
	pairs := make([]replace.Pair, 0, len(p.FilenameReplace))
	for _, rule := range p.FilenameReplace {
		pairs = append(pairs, replace.Pair{Key: rule.Key, Value: rule.Value})
	}
	m, err := replace.New(pairs...)
	if err != nil {
		return replace.Map{}, faults.Wrap(faults.ErrValidation, "preferences", "filename-replace", "", err)
	}
	return m, nil
}

func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
