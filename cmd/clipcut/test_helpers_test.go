package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testJobDocument = `
videos:
  - date: 2020-01-01T00:00:00
    title: video 1
    epoch: "0"
    clips:
      - time: 0:00 - 5:00
        title: intro
`

type cliTestEnv struct {
	baseDir   string
	prefsPath string
	videoDir  string
	outputDir string
	jobPath   string
}

// setupCLITestEnv builds an isolated working tree for one invocation: fresh
// video and output directories, a one-clip job file, and a preferences path
// that does not exist so only built-in defaults apply.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		baseDir:   base,
		prefsPath: filepath.Join(base, "config.toml"),
		videoDir:  filepath.Join(base, "videos"),
		outputDir: filepath.Join(base, "clips"),
		jobPath:   filepath.Join(base, "clip.yaml"),
	}
	for _, dir := range []string{env.videoDir, env.outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	if err := os.WriteFile(env.jobPath, []byte(testJobDocument), 0o644); err != nil {
		t.Fatalf("write job file: %v", err)
	}
	return env
}

func (e *cliTestEnv) writeSource(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(e.videoDir, name)
	if err := os.WriteFile(path, []byte("video"), 0o644); err != nil {
		t.Fatalf("write source %s: %v", name, err)
	}
	return path
}

func (e *cliTestEnv) writePrefs(t *testing.T, content string) {
	t.Helper()
	if err := os.WriteFile(e.prefsPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write preferences: %v", err)
	}
}

// runCLI executes a fresh root command with the environment's isolation flags
// prepended. History recording is off unless the test passes --history-path.
func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	flags := []string{
		"--config", env.prefsPath,
		"--video-dir", env.videoDir,
		"--output-dir", env.outputDir,
		"--job-path", env.jobPath,
	}
	if !containsFlag(args, "--history-path") {
		flags = append(flags, "--history-path", "")
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func containsFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name || strings.HasPrefix(arg, name+"=") {
			return true
		}
	}
	return false
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
