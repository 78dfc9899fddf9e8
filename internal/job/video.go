package job

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"clipcut/internal/faults"
	"clipcut/internal/replace"
	"clipcut/internal/timespan"
)

// Video is one source recording and the clips to cut from it. Epoch is a
// virtual zero offset used only to shift the times shown in destination
// filenames; it defaults to zero.
type Video struct {
	Date  time.Time
	Title string
	Epoch time.Duration
	Clips []Clip
}

type rawVideo struct {
	Date  string    `yaml:"date"`
	Title string    `yaml:"title"`
	Epoch string    `yaml:"epoch"`
	Clips yaml.Node `yaml:"clips"`
}

func (r rawVideo) toVideo() (Video, error) {
	if strings.TrimSpace(r.Date) == "" {
		return Video{}, faults.Wrap(faults.ErrValidation, "video", "date", "field is required", nil)
	}
	date, err := timespan.ParseTimestamp(r.Date)
	if err != nil {
		return Video{}, faults.Wrap(faults.ErrValidation, "video", "date", "", err)
	}

	title := strings.TrimSpace(r.Title)
	if title == "" {
		return Video{}, faults.Wrap(faults.ErrValidation, "video", "title", "field is required", nil)
	}

	epoch := time.Duration(0)
	if strings.TrimSpace(r.Epoch) != "" {
		if epoch, err = timespan.Parse(r.Epoch); err != nil {
			return Video{}, faults.Wrap(faults.ErrValidation, "video", "epoch", "", err)
		}
	}

	clips, err := decodeClips(r.Clips)
	if err != nil {
		return Video{}, err
	}

	return Video{Date: date, Title: title, Epoch: epoch, Clips: clips}, nil
}

func decodeClips(node yaml.Node) ([]Clip, error) {
	if node.IsZero() || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, faults.Wrap(faults.ErrValidation, "video", "clips", "expected a list of clips", nil)
	}
	clips := make([]Clip, 0, len(node.Content))
	for i, entry := range node.Content {
		if entry.Kind != yaml.MappingNode {
			return nil, faults.Wrap(faults.ErrValidation, "video", "clips",
				fmt.Sprintf("entry %d is not a clip document", i), nil)
		}
		var raw rawClip
		if err := entry.Decode(&raw); err != nil {
			return nil, faults.Wrap(faults.ErrValidation, "video", "clips", "", err)
		}
		clip, err := raw.toClip()
		if err != nil {
			return nil, err
		}
		clips = append(clips, clip)
	}
	return clips, nil
}

// SourceName derives the expected source filename for the video. The
// replacement rules are applied to the filename format itself, not to the
// formatted result, so operators can rewrite format tokens.
func (v Video) SourceName(format string, rules replace.Map, ext string) string {
	return v.Date.Format(rules.Apply(format)) + "." + ext
}

// SourcePath locates the source recording under videoDir. A path that does
// not exist, or is not a regular file, is a missing-file error.
func (v Video) SourcePath(videoDir, format string, rules replace.Map, ext string) (string, error) {
	path := filepath.Join(videoDir, v.SourceName(format, rules, ext))
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", faults.Wrap(faults.ErrMissingFile, "video", v.Title,
			fmt.Sprintf("source recording %s not found", path), nil)
	}
	return path, nil
}
