package faults_test

import (
	"errors"
	"testing"

	"clipcut/internal/faults"
)

func TestWrapTagsMarkerAndContext(t *testing.T) {
	cause := errors.New("boom")
	err := faults.Wrap(faults.ErrValidation, "clip", "time", "bad range", cause)
	if !errors.Is(err, faults.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	want := "validation error: clip: time: bad range: boom"
	if err.Error() != want {
		t.Fatalf("unexpected message: got %q want %q", err.Error(), want)
	}
}

func TestWrapDefaultsToExecutionMarker(t *testing.T) {
	err := faults.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, faults.ErrExecution) {
		t.Fatalf("expected execution marker, got %v", err)
	}
	if err.Error() != "execution failure: failure" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapSkipsEmptyParts(t *testing.T) {
	err := faults.Wrap(faults.ErrMissingFile, "video", "", "no source", nil)
	if err.Error() != "missing file: video: no source" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
