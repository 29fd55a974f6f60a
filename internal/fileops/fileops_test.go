package fileops_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"reshelf/internal/fileops"
	"reshelf/internal/testsupport"
)

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")

	content := []byte("hello world")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := fileops.CopyFile(src, dst); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestMoveOrCopyMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mkv")
	dst := filepath.Join(dir, "b.mkv")
	testsupport.WriteFile(t, src, 16)

	if err := fileops.MoveOrCopy(src, dst, false, false, nil); err != nil {
		t.Fatalf("MoveOrCopy: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatal("source should be gone after move")
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("destination missing: %v", err)
	}
}

func TestMoveOrCopyCopyMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mkv")
	dst := filepath.Join(dir, "b.mkv")
	testsupport.WriteFile(t, src, 16)

	if err := fileops.MoveOrCopy(src, dst, true, false, nil); err != nil {
		t.Fatalf("MoveOrCopy: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatal("source must survive copy mode")
	}
	if _, err := os.Stat(dst); err != nil {
		t.Fatalf("destination missing: %v", err)
	}
}

func TestMoveOrCopyDryRunTouchesNothing(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mkv")
	dst := filepath.Join(dir, "b.mkv")
	testsupport.WriteFile(t, src, 16)

	if err := fileops.MoveOrCopy(src, dst, false, true, nil); err != nil {
		t.Fatalf("MoveOrCopy: %v", err)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatal("source must be untouched under dry-run")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Fatal("destination must not exist after dry-run")
	}
}

func TestMoveOrCopyMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := fileops.MoveOrCopy(filepath.Join(dir, "ghost.mkv"), filepath.Join(dir, "b.mkv"), false, false, nil)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestTouch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mkv")
	testsupport.WriteFile(t, path, 4)

	want := time.Now().AddDate(-1, 0, 0).Truncate(time.Second)
	if err := fileops.Touch(path, want, false, nil); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Truncate(time.Second).Equal(want) {
		t.Fatalf("mtime not set: got %v want %v", info.ModTime(), want)
	}
}

func TestTouchDryRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "clip.mkv")
	testsupport.WriteFile(t, path, 4)
	before, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := fileops.Touch(path, time.Now().AddDate(-1, 0, 0), true, nil); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatal("dry-run must not modify timestamps")
	}
}

func TestEnsureDirIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "deep")
	if err := fileops.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if err := fileops.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir second call: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("directory missing: %v", err)
	}
}
