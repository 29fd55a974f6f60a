package workflow_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"reshelf/internal/testsupport"
	"reshelf/internal/workflow"
)

func TestRenameStripsPrefixAndSuffix(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, "FOO_clip.mp4", "show.suffix.mkv", "plain.avi")

	opts := workflow.Options{Source: root, Prefix: "FOO_", Suffix: ".suffix"}
	if err := workflow.Rename(context.Background(), opts, nil); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	for _, want := range []string{"clip.mp4", "show.mkv", "plain.avi"} {
		if _, err := os.Stat(filepath.Join(root, want)); err != nil {
			t.Fatalf("expected %s to exist: %v", want, err)
		}
	}
	for _, gone := range []string{"FOO_clip.mp4", "show.suffix.mkv"} {
		if _, err := os.Stat(filepath.Join(root, gone)); !os.IsNotExist(err) {
			t.Fatalf("expected %s to be renamed away", gone)
		}
	}
}

func TestRenameIsIdempotent(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, "FOO_clip.mp4")

	opts := workflow.Options{Source: root, Prefix: "FOO_"}
	ctx := context.Background()
	if err := workflow.Rename(ctx, opts, nil); err != nil {
		t.Fatalf("first pass: %v", err)
	}
	before, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if err := workflow.Rename(ctx, opts, nil); err != nil {
		t.Fatalf("second pass: %v", err)
	}
	after, err := os.ReadDir(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(before) != len(after) || before[0].Name() != after[0].Name() {
		t.Fatalf("second pass changed the directory: %v vs %v", before, after)
	}
}

func TestRenameDryRunMovesNothing(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, "FOO_clip.mp4")

	opts := workflow.Options{Source: root, Prefix: "FOO_", DryRun: true}
	if err := workflow.Rename(context.Background(), opts, nil); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "FOO_clip.mp4")); err != nil {
		t.Fatal("source must remain under dry-run")
	}
	if _, err := os.Stat(filepath.Join(root, "clip.mp4")); !os.IsNotExist(err) {
		t.Fatal("no destination file may appear under dry-run")
	}
}

func TestRenameCopyModeKeepsSource(t *testing.T) {
	root := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteTree(t, root, "FOO_clip.mp4")

	opts := workflow.Options{Source: root, Dest: dest, Prefix: "FOO_", Copy: true}
	if err := workflow.Rename(context.Background(), opts, nil); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "FOO_clip.mp4")); err != nil {
		t.Fatal("copy mode must leave the source")
	}
	if _, err := os.Stat(filepath.Join(dest, "clip.mp4")); err != nil {
		t.Fatalf("copy missing from dest: %v", err)
	}
}
