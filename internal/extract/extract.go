// Package extract invokes ffmpeg to produce lossless stream-copied clips.
// Prefer this package over ad-hoc exec.Command usage when cutting media.
package extract

import (
	"context"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"clipcut/internal/faults"
)

// Request describes one clip extraction: a time range of the source,
// stream-copied to the destination.
type Request struct {
	Source      string
	Start       time.Duration
	Length      time.Duration
	Destination string
}

// Extractor produces a clip for a request.
type Extractor interface {
	Extract(ctx context.Context, req Request) error
}

// FFmpeg is the ffmpeg-backed Extractor.
type FFmpeg struct {
	// Binary is the ffmpeg executable name or path.
	Binary string
}

// NewFFmpeg returns an extractor using the given ffmpeg binary.
func NewFFmpeg(binary string) *FFmpeg {
	return &FFmpeg{Binary: binary}
}

// Extract stream-copies the requested range. ffmpeg writes to a uniquely
// named sibling of the destination which is renamed into place on success,
// so a partially written file can never be mistaken for a finished clip.
func (f *FFmpeg) Extract(ctx context.Context, req Request) error {
	tmp := req.Destination + ".partial-" + uuid.NewString()
	args := buildArgs(req, tmp)

	cmd := exec.CommandContext(ctx, f.Binary, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.Remove(tmp)
		return faults.Wrap(faults.ErrExecution, "ffmpeg", req.Destination,
			strings.TrimSpace(string(output)), err)
	}
	if err := os.Rename(tmp, req.Destination); err != nil {
		_ = os.Remove(tmp)
		return faults.Wrap(faults.ErrExecution, "ffmpeg", req.Destination, "finalize clip", err)
	}
	return nil
}

func buildArgs(req Request, dest string) []string {
	return []string{
		"-hide_banner",
		"-loglevel", "error",
		"-nostdin",
		"-ss", seconds(req.Start),
		"-i", req.Source,
		"-map", "0:v",
		"-map", "0:a",
		"-c:v", "copy",
		"-c:a", "copy",
		"-t", seconds(req.Length),
		dest,
	}
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64)
}
