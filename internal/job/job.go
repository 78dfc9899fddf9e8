package job

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"clipcut/internal/config"
	"clipcut/internal/faults"
	"clipcut/internal/replace"
)

// Job is the full batch: where clips are written, where recordings live, and
// the videos to process in declared order. Directory fields in the document
// override the resolved configuration; FilenameReplace, when present,
// overrides the configured replacement rules for the whole job.
type Job struct {
	OutputDir       string
	VideoDir        string
	FilenameReplace *replace.Map
	Videos          []Video
}

type rawJob struct {
	OutputDir       string    `yaml:"output-dir"`
	VideoDir        string    `yaml:"video-dir"`
	FilenameReplace yaml.Node `yaml:"filename-replace"`
	Videos          yaml.Node `yaml:"videos"`
}

// Load reads and decodes the job document at path.
func Load(path string, cfg *config.Config) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, faults.Wrap(faults.ErrMissingFile, "job", path, "cannot read job file", err)
	}
	j, err := FromDocument(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("job file %s: %w", path, err)
	}
	return j, nil
}

// FromDocument decodes a YAML job document. Absent directory fields default
// to the corresponding configuration values.
func FromDocument(data []byte, cfg *config.Config) (*Job, error) {
	var raw rawJob
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, faults.Wrap(faults.ErrValidation, "job", "", "malformed document", err)
	}

	j := &Job{
		OutputDir: cfg.OutputDir,
		VideoDir:  cfg.VideoDir,
	}
	if raw.OutputDir != "" {
		j.OutputDir = raw.OutputDir
	}
	if raw.VideoDir != "" {
		j.VideoDir = raw.VideoDir
	}

	if !raw.FilenameReplace.IsZero() && raw.FilenameReplace.Tag != "!!null" {
		rules, err := replace.FromNode(&raw.FilenameReplace)
		if err != nil {
			return nil, faults.Wrap(faults.ErrValidation, "job", "filename-replace", "", err)
		}
		j.FilenameReplace = &rules
	}

	videos, err := decodeVideos(raw.Videos)
	if err != nil {
		return nil, err
	}
	j.Videos = videos
	return j, nil
}

func decodeVideos(node yaml.Node) ([]Video, error) {
	if node.IsZero() || node.Tag == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, faults.Wrap(faults.ErrValidation, "job", "videos", "expected a list of videos", nil)
	}
	videos := make([]Video, 0, len(node.Content))
	for i, entry := range node.Content {
		if entry.Kind != yaml.MappingNode {
			return nil, faults.Wrap(faults.ErrValidation, "job", "videos",
				fmt.Sprintf("entry %d is not a video document", i), nil)
		}
		var raw rawVideo
		if err := entry.Decode(&raw); err != nil {
			return nil, faults.Wrap(faults.ErrValidation, "job", "videos", "", err)
		}
		video, err := raw.toVideo()
		if err != nil {
			return nil, fmt.Errorf("video %d: %w", i, err)
		}
		videos = append(videos, video)
	}
	return videos, nil
}

// Rules returns the replacement rules in effect for this job: the per-job
// override when present, otherwise the configured rules.
func (j *Job) Rules(cfg *config.Config) replace.Map {
	if j.FilenameReplace != nil {
		return *j.FilenameReplace
	}
	return cfg.FilenameReplace
}
