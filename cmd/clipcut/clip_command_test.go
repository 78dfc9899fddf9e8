package main

import (
	"testing"
)

func TestClipAppendsToLastVideo(t *testing.T) {
	env := setupCLITestEnv(t)
	env.writeSource(t, "2020-01-01 00-00-00.mkv")

	out, _, err := runCLI(t, env, "clip", "5:00 - 6:30", "outro")
	if err != nil {
		t.Fatalf("clip: %v", err)
	}
	requireContains(t, out, "outro")

	plan, _, err := runCLI(t, env, "run", "--dry-run")
	if err != nil {
		t.Fatalf("run --dry-run after clip: %v", err)
	}
	requireContains(t, plan, "intro")
	requireContains(t, plan, "outro")
	requireContains(t, plan, "t+0-05-00")
}

func TestClipRejectsInvalidRange(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "clip", "6:30 - 5:00", "backwards"); err == nil {
		t.Fatal("expected an error for an end before the start")
	}
}

func TestClipRequiresBothArguments(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "clip", "5:00 - 6:30"); err == nil {
		t.Fatal("expected an error for a missing title argument")
	}
}
