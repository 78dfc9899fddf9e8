package job

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"clipcut/internal/faults"
)

// AppendClip validates a "<start> - <end>" range and a title, then appends
// the clip to the last video in the job document at path, rewriting the file
// in place. The document is edited at the node level so unrelated content
// (including comments) survives the round trip.
func AppendClip(path, timeText, title string) error {
	timeText = strings.TrimSpace(timeText)
	title = strings.TrimSpace(title)
	if _, _, err := ParseTimeRange(timeText); err != nil {
		return err
	}
	if title == "" {
		return faults.Wrap(faults.ErrValidation, "clip", "title", "title cannot be empty", nil)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return faults.Wrap(faults.ErrMissingFile, "job", path, "cannot read job file", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return faults.Wrap(faults.ErrValidation, "job", path, "malformed document", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return faults.Wrap(faults.ErrValidation, "job", path, "document is not a mapping", nil)
	}
	root := doc.Content[0]

	videos := mappingValue(root, "videos")
	if videos == nil || videos.Kind != yaml.SequenceNode || len(videos.Content) == 0 {
		return faults.Wrap(faults.ErrValidation, "job", path, "no videos to append a clip to", nil)
	}
	last := videos.Content[len(videos.Content)-1]
	if last.Kind != yaml.MappingNode {
		return faults.Wrap(faults.ErrValidation, "job", path,
			fmt.Sprintf("video entry %d is not a video document", len(videos.Content)-1), nil)
	}

	clips := mappingValue(last, "clips")
	if clips == nil {
		clips = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		last.Content = append(last.Content,
			scalarNode("clips"),
			clips,
		)
	} else if clips.Kind != yaml.SequenceNode {
		if clips.Tag == "!!null" {
			*clips = yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		} else {
			return faults.Wrap(faults.ErrValidation, "job", path, "clips is not a list", nil)
		}
	}

	clips.Content = append(clips.Content, &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			scalarNode("time"), scalarNode(timeText),
			scalarNode("title"), scalarNode(title),
		},
	})

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return fmt.Errorf("encode job file: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encode job file: %w", err)
	}
	if err := os.WriteFile(path, []byte(buf.String()), 0o644); err != nil {
		return fmt.Errorf("write job file: %w", err)
	}
	return nil
}

func mappingValue(mapping *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}
	return nil
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
