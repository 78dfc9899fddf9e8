package job_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"clipcut/internal/config"
	"clipcut/internal/faults"
	"clipcut/internal/job"
	"clipcut/internal/replace"
)

func decodeJob(t *testing.T, doc string) *job.Job {
	t.Helper()
	cfg := &config.Config{OutputDir: ".", VideoDir: "."}
	j, err := job.FromDocument([]byte(doc), cfg)
	if err != nil {
		t.Fatalf("FromDocument returned error: %v", err)
	}
	return j
}

func TestVideoDecodeDefaults(t *testing.T) {
	j := decodeJob(t, `
videos:
  - date: 2020-01-01T00:00:00
    title: video 1
`)
	if len(j.Videos) != 1 {
		t.Fatalf("unexpected video count: %d", len(j.Videos))
	}
	v := j.Videos[0]
	if v.Epoch != 0 {
		t.Fatalf("epoch = %v, want 0", v.Epoch)
	}
	if len(v.Clips) != 0 {
		t.Fatalf("expected no clips, got %d", len(v.Clips))
	}
	if !v.Date.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("unexpected date: %v", v.Date)
	}
}

func TestVideoDecodeEpochAndClips(t *testing.T) {
	j := decodeJob(t, `
videos:
  - date: 2020-01-01T00:00:00
    title: video 1
    epoch: "1:00"
    clips:
      - time: 0:00 - 5:00
        title: intro
      - time: "5:00 - 6:30"
        title: outro
`)
	v := j.Videos[0]
	if v.Epoch != time.Minute {
		t.Fatalf("epoch = %v, want 1m", v.Epoch)
	}
	if len(v.Clips) != 2 {
		t.Fatalf("unexpected clip count: %d", len(v.Clips))
	}
	if v.Clips[0].Title != "intro" || v.Clips[0].End != 5*time.Minute {
		t.Fatalf("unexpected first clip: %+v", v.Clips[0])
	}
	if v.Clips[1].Start != 5*time.Minute || v.Clips[1].End != 6*time.Minute+30*time.Second {
		t.Fatalf("unexpected second clip: %+v", v.Clips[1])
	}
}

func TestVideoDecodeRejections(t *testing.T) {
	cfg := &config.Config{OutputDir: ".", VideoDir: "."}
	cases := map[string]string{
		"missing date":   "videos:\n  - title: x\n",
		"missing title":  "videos:\n  - date: 2020-01-01T00:00:00\n",
		"bad date":       "videos:\n  - date: yesterday\n    title: x\n",
		"bad epoch":      "videos:\n  - date: 2020-01-01T00:00:00\n    title: x\n    epoch: abc\n",
		"clips not list": "videos:\n  - date: 2020-01-01T00:00:00\n    title: x\n    clips: 5\n",
		"clip not map":   "videos:\n  - date: 2020-01-01T00:00:00\n    title: x\n    clips:\n      - 5\n",
		"clip no time":   "videos:\n  - date: 2020-01-01T00:00:00\n    title: x\n    clips:\n      - title: y\n",
		"clip no title":  "videos:\n  - date: 2020-01-01T00:00:00\n    title: x\n    clips:\n      - time: 0:00 - 1:00\n",
		"clip reversed":  "videos:\n  - date: 2020-01-01T00:00:00\n    title: x\n    clips:\n      - {time: 2:00 - 1:00, title: y}\n",
		"blank title":    "videos:\n  - date: 2020-01-01T00:00:00\n    title: \"   \"\n",
	}
	for name, doc := range cases {
		if _, err := job.FromDocument([]byte(doc), cfg); !errors.Is(err, faults.ErrValidation) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestSourceNameAppliesRulesToFormatString(t *testing.T) {
	v := job.Video{Date: time.Date(2020, 1, 1, 10, 20, 30, 0, time.Local), Title: "x"}

	// The rule rewrites a token in the format string, so the formatted
	// result uses underscores between time components.
	rules := mustRules(t, replace.Pair{Key: "15-04-05", Value: "15_04_05"})
	got := v.SourceName("2006-01-02 15-04-05", rules, "mkv")
	if got != "2020-01-01 10_20_30.mkv" {
		t.Fatalf("SourceName = %q", got)
	}

	// Rules never touch the formatted result: "2020" appears only in the
	// output, not in the format string, and must survive.
	rules = mustRules(t, replace.Pair{Key: "2020", Value: "XXXX"})
	got = v.SourceName("2006-01-02 15-04-05", rules, "mkv")
	if got != "2020-01-01 10-20-30.mkv" {
		t.Fatalf("SourceName = %q, rules leaked into the derived name", got)
	}
}

func TestSourcePath(t *testing.T) {
	dir := t.TempDir()
	v := job.Video{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local), Title: "video 1"}

	if _, err := v.SourcePath(dir, "2006-01-02 15-04-05", replace.Map{}, "mkv"); !errors.Is(err, faults.ErrMissingFile) {
		t.Fatalf("expected missing-file error, got %v", err)
	}

	want := filepath.Join(dir, "2020-01-01 00-00-00.mkv")
	if err := os.WriteFile(want, []byte("x"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	got, err := v.SourcePath(dir, "2006-01-02 15-04-05", replace.Map{}, "mkv")
	if err != nil {
		t.Fatalf("SourcePath returned error: %v", err)
	}
	if got != want {
		t.Fatalf("SourcePath = %q, want %q", got, want)
	}
}

func TestSourcePathRejectsDirectories(t *testing.T) {
	dir := t.TempDir()
	v := job.Video{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local), Title: "video 1"}
	if err := os.Mkdir(filepath.Join(dir, "2020-01-01 00-00-00.mkv"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := v.SourcePath(dir, "2006-01-02 15-04-05", replace.Map{}, "mkv"); !errors.Is(err, faults.ErrMissingFile) {
		t.Fatalf("expected missing-file error for directory, got %v", err)
	}
}
