// Package testsupport provides shared fixtures for clipcut tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"clipcut/internal/config"
)

// Env bundles a resolved configuration seeded with unique temp directories.
type Env struct {
	Config  *config.Config
	BaseDir string
}

// EnvOption customizes the generated test environment.
type EnvOption func(*config.Config)

// NewEnv produces a config whose video and output directories point at fresh
// temp directories. History is disabled; tests that need it open their own
// store.
func NewEnv(t testing.TB, opts ...EnvOption) *Env {
	t.Helper()

	base := t.TempDir()
	videoDir := filepath.Join(base, "videos")
	outputDir := filepath.Join(base, "clips")
	for _, dir := range []string{videoDir, outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("create %s: %v", dir, err)
		}
	}

	prefs := config.DefaultPrefs()
	cfg, err := config.Resolve(config.SubcommandRun, prefs, config.Overrides{})
	if err != nil {
		t.Fatalf("resolve test config: %v", err)
	}
	cfg.VideoDir = videoDir
	cfg.OutputDir = outputDir
	cfg.HistoryPath = ""
	cfg.JobPath = filepath.Join(base, "clip.yaml")

	for _, opt := range opts {
		opt(cfg)
	}

	return &Env{Config: cfg, BaseDir: base}
}

// WithOutputExt overrides the output clip extension.
func WithOutputExt(ext string) EnvOption {
	return func(cfg *config.Config) { cfg.OutputExt = ext }
}

// WithVideoExt overrides the source video extension.
func WithVideoExt(ext string) EnvOption {
	return func(cfg *config.Config) { cfg.VideoExt = ext }
}

// WriteSource drops a placeholder recording with the given name into the
// configured video directory and returns its path.
func (e *Env) WriteSource(t testing.TB, name string) string {
	t.Helper()
	path := filepath.Join(e.Config.VideoDir, name)
	if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
		t.Fatalf("write source %s: %v", name, err)
	}
	return path
}
