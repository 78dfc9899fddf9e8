// Package runner derives the concrete extraction plan for a job and executes
// it strictly in declared order.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sys/unix"

	"clipcut/internal/config"
	"clipcut/internal/extract"
	"clipcut/internal/faults"
	"clipcut/internal/history"
	"clipcut/internal/job"
	"clipcut/internal/logging"
)

const lockFileName = ".clipcut.lock"

// Runner executes jobs. The ledger is optional; a nil ledger disables
// history recording.
type Runner struct {
	cfg    *config.Config
	ext    extract.Extractor
	ledger *history.Store
	logger *slog.Logger
}

// New constructs a runner. A nil logger discards log output.
func New(cfg *config.Config, ext extract.Extractor, ledger *history.Store, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{cfg: cfg, ext: ext, ledger: ledger, logger: logger}
}

// Entry is one derived extraction in a plan.
type Entry struct {
	VideoTitle        string
	ClipTitle         string
	Source            string
	Destination       string
	StartSeconds      float64
	LengthSeconds     float64
	SourceMissing     bool
	DestinationExists bool
}

// Summary reports what a run did.
type Summary struct {
	Completed int
	Skipped   int
}

// Plan derives every extraction the job describes without touching ffmpeg.
// Missing sources and already-existing destinations are flagged, not errors,
// so the plan can be previewed for an incomplete library.
func (r *Runner) Plan(j *job.Job) []Entry {
	rules := j.Rules(r.cfg)
	var entries []Entry
	for _, video := range j.Videos {
		source := filepath.Join(j.VideoDir, video.SourceName(r.cfg.VideoFilenameFormat, rules, r.cfg.VideoExt))
		missing := true
		if info, err := os.Stat(source); err == nil && info.Mode().IsRegular() {
			missing = false
		}
		for _, clip := range video.Clips {
			dest := filepath.Join(j.OutputDir, clip.DestinationName(video.Date, video.Epoch, video.Title, rules, r.cfg.OutputExt))
			_, err := os.Stat(dest)
			entries = append(entries, Entry{
				VideoTitle:        video.Title,
				ClipTitle:         clip.Title,
				Source:            source,
				Destination:       dest,
				StartSeconds:      clip.Start.Seconds(),
				LengthSeconds:     clip.Length().Seconds(),
				SourceMissing:     missing,
				DestinationExists: err == nil,
			})
		}
	}
	return entries
}

// Run executes the job: videos and clips strictly in declared order, one at
// a time, failing fast on the first error. Destinations that already exist
// are skipped, which makes a re-run after a partial failure safe.
func (r *Runner) Run(ctx context.Context, j *job.Job) (Summary, error) {
	var summary Summary

	runID := uuid.NewString()
	log := r.logger.With(slog.String("run_id", runID))

	if err := os.MkdirAll(j.OutputDir, 0o755); err != nil {
		return summary, faults.Wrap(faults.ErrExecution, "run", j.OutputDir, "create output directory", err)
	}
	if err := unix.Access(j.OutputDir, unix.W_OK|unix.X_OK); err != nil {
		return summary, faults.Wrap(faults.ErrExecution, "run", j.OutputDir, "output directory not writable", err)
	}

	lock := flock.New(filepath.Join(j.OutputDir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return summary, faults.Wrap(faults.ErrExecution, "run", lock.Path(), "acquire run lock", err)
	}
	if !locked {
		return summary, faults.Wrap(faults.ErrExecution, "run", lock.Path(), "another run is in progress", nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	rules := j.Rules(r.cfg)
	for _, video := range j.Videos {
		source, err := video.SourcePath(j.VideoDir, r.cfg.VideoFilenameFormat, rules, r.cfg.VideoExt)
		if err != nil {
			return summary, err
		}
		log.Info("processing video",
			slog.String("title", video.Title),
			slog.String("source", source),
			slog.Int("clips", len(video.Clips)))

		for _, clip := range video.Clips {
			dest := filepath.Join(j.OutputDir, clip.DestinationName(video.Date, video.Epoch, video.Title, rules, r.cfg.OutputExt))
			req := extract.Request{
				Source:      source,
				Start:       clip.Start,
				Length:      clip.Length(),
				Destination: dest,
			}

			if _, err := os.Stat(dest); err == nil {
				log.Info("destination exists, skipping", slog.String("destination", dest))
				r.record(ctx, log, runID, req, history.StatusSkipped, "destination already exists")
				summary.Skipped++
				continue
			} else if !errors.Is(err, fs.ErrNotExist) {
				return summary, faults.Wrap(faults.ErrExecution, "run", dest, "inspect destination", err)
			}

			if err := r.ext.Extract(ctx, req); err != nil {
				r.record(ctx, log, runID, req, history.StatusFailed, err.Error())
				return summary, err
			}
			log.Info("clip written",
				slog.String("destination", dest),
				slog.Float64("start_seconds", clip.Start.Seconds()),
				slog.Float64("length_seconds", clip.Length().Seconds()))
			r.record(ctx, log, runID, req, history.StatusCompleted, "")
			summary.Completed++
		}
	}

	log.Info("run finished",
		slog.Int("completed", summary.Completed),
		slog.Int("skipped", summary.Skipped))
	return summary, nil
}

func (r *Runner) record(ctx context.Context, log *slog.Logger, runID string, req extract.Request, status history.Status, detail string) {
	if r.ledger == nil {
		return
	}
	_, err := r.ledger.Append(ctx, history.Record{
		RunID:         runID,
		Source:        req.Source,
		Destination:   req.Destination,
		StartSeconds:  req.Start.Seconds(),
		LengthSeconds: req.Length.Seconds(),
		Status:        status,
		Detail:        detail,
	})
	if err != nil {
		log.Warn("history record failed", slog.String("error", fmt.Sprintf("%v", err)))
	}
}
