package job

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"clipcut/internal/faults"
	"clipcut/internal/replace"
	"clipcut/internal/timespan"
)

// forbiddenReplacer rewrites characters that are unsafe in filenames on at
// least one supported filesystem. It runs before user replacement rules, so
// user rules can rewrite the dashes it introduces.
var forbiddenReplacer = strings.NewReplacer(
	`"`, "-",
	"*", "-",
	"/", "-",
	":", "-",
	"?", "-",
	`\`, "-",
	"|", "-",
	"<", "-",
	">", "-",
)

// Clip is one requested extraction from a source recording. Start and End are
// offsets from the beginning of the recording; End is strictly after Start.
type Clip struct {
	Start time.Duration
	End   time.Duration
	Title string
}

type rawClip struct {
	Time  string `yaml:"time"`
	Title string `yaml:"title"`
}

func (r rawClip) toClip() (Clip, error) {
	if strings.TrimSpace(r.Time) == "" {
		return Clip{}, faults.Wrap(faults.ErrValidation, "clip", "time", "field is required", nil)
	}
	start, end, err := ParseTimeRange(r.Time)
	if err != nil {
		return Clip{}, err
	}
	title := strings.TrimSpace(r.Title)
	if title == "" {
		return Clip{}, faults.Wrap(faults.ErrValidation, "clip", "title", "field is required", nil)
	}
	return Clip{Start: start, End: end, Title: title}, nil
}

// ParseTimeRange parses a "<start> - <end>" range, splitting on the first
// "-" and trimming both halves. End must be strictly after start.
func ParseTimeRange(text string) (start, end time.Duration, err error) {
	startText, endText, found := strings.Cut(text, "-")
	if !found {
		return 0, 0, faults.Wrap(faults.ErrValidation, "clip", "time",
			fmt.Sprintf("expected \"<start> - <end>\", got %q", text), nil)
	}
	if start, err = timespan.Parse(startText); err != nil {
		return 0, 0, faults.Wrap(faults.ErrValidation, "clip", "time", "", err)
	}
	if end, err = timespan.Parse(endText); err != nil {
		return 0, 0, faults.Wrap(faults.ErrValidation, "clip", "time", "", err)
	}
	if end <= start {
		return 0, 0, faults.Wrap(faults.ErrValidation, "clip", "time",
			fmt.Sprintf("end %q is not after start %q", strings.TrimSpace(endText), strings.TrimSpace(startText)), nil)
	}
	return start, end, nil
}

// Length is the duration of the extracted clip.
func (c Clip) Length() time.Duration { return c.End - c.Start }

// DestinationName derives the output filename for the clip. Segments are
// joined with " - ": the epoch-shifted recording timestamp, a T+ offset of
// the clip start relative to the epoch, the video title, and the clip title.
// The joined string is Unicode case-folded, unsafe filename characters become
// dashes, the user replacement rules run last, and the output extension is
// appended. The sanitize-then-replace order is contractual: user rules see
// (and may rewrite) sanitizer-introduced dashes.
func (c Clip) DestinationName(date time.Time, epoch time.Duration, videoTitle string, rules replace.Map, ext string) string {
	segments := []string{
		date.Add(epoch).Format("2006-01-02 15:04:05"),
		"T+" + timespan.PathString(c.Start-epoch),
		videoTitle,
		c.Title,
	}
	name := cases.Fold().String(strings.Join(segments, " - "))
	name = forbiddenReplacer.Replace(name)
	return rules.Apply(name) + "." + ext
}
