package workflow_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"reshelf/internal/config"
	"reshelf/internal/logging"
	"reshelf/internal/testsupport"
	"reshelf/internal/workflow"
)

type fakeUnrar struct {
	calls [][2]string
	fill  []string
}

func (f *fakeUnrar) Extract(_ context.Context, archive, destDir string) error {
	f.calls = append(f.calls, [2]string{archive, destDir})
	for _, name := range f.fill {
		if err := os.WriteFile(filepath.Join(destDir, name), []byte("x"), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func newExtractor(cfg *config.Config, client *fakeUnrar) *workflow.Extractor {
	return workflow.NewExtractor(cfg, client, logging.Options{Writer: io.Discard})
}

func TestExtractOneDirectory(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	root := t.TempDir()
	content := filepath.Join(root, "Alpha")
	testsupport.WriteTree(t, root,
		filepath.Join("Alpha", "movie.mkv"),
		filepath.Join("Alpha", "movie.srt"),
		filepath.Join("Alpha", "extras.rar"),
		filepath.Join("Alpha", "cover.jpg"),
		filepath.Join("Alpha", "Sample", "sample.mkv"),
	)

	client := &fakeUnrar{fill: []string{"bonus.mkv"}}
	if err := newExtractor(cfg, client).ExtractOne(context.Background(), content, root); err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}

	dest := filepath.Join(root, "!extract", "Alpha")
	for _, want := range []string{
		"movie.mkv", "movie.srt", "!extract.log", "bonus.mkv",
		filepath.Join("Sample", "sample.mkv"),
	} {
		if _, err := os.Stat(filepath.Join(dest, want)); err != nil {
			t.Fatalf("expected %s in extract area: %v", want, err)
		}
	}
	// The archive itself is unpacked, not copied; non-whitelisted files skipped.
	for _, gone := range []string{"extras.rar", "cover.jpg"} {
		if _, err := os.Stat(filepath.Join(dest, gone)); !os.IsNotExist(err) {
			t.Fatalf("%s should not be copied", gone)
		}
	}
	if len(client.calls) != 1 {
		t.Fatalf("expected one extraction, got %v", client.calls)
	}
	if client.calls[0][0] != filepath.Join(content, "extras.rar") || client.calls[0][1] != dest {
		t.Fatalf("unexpected extraction call: %v", client.calls[0])
	}
}

func TestExtractOneSingleWhitelistedFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	root := t.TempDir()
	content := filepath.Join(root, "movie.mkv")
	testsupport.WriteFile(t, content, 64)

	if err := newExtractor(cfg, &fakeUnrar{}).ExtractOne(context.Background(), content, root); err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}

	dest := filepath.Join(root, "!extract", "movie.mkv")
	if _, err := os.Stat(filepath.Join(dest, "movie.mkv")); err != nil {
		t.Fatalf("file not copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "!extract.log")); err != nil {
		t.Fatalf("extract log missing: %v", err)
	}
}

func TestExtractOneSkipsNonWhitelistedFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	root := t.TempDir()
	content := filepath.Join(root, "readme.nfo")
	testsupport.WriteFile(t, content, 8)

	if err := newExtractor(cfg, &fakeUnrar{}).ExtractOne(context.Background(), content, root); err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}

	dest := filepath.Join(root, "!extract", "readme.nfo")
	if _, err := os.Stat(filepath.Join(dest, "readme.nfo")); !os.IsNotExist(err) {
		t.Fatal("non-whitelisted file must not be copied")
	}
	// The run still leaves its log behind, with the skip notice flushed.
	data, err := os.ReadFile(filepath.Join(dest, "!extract.log"))
	if err != nil {
		t.Fatalf("extract log missing: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("extract log should record the skip")
	}
}

func TestExtractThenReconcile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	root := t.TempDir()
	testsupport.WriteTree(t, root,
		filepath.Join("Alpha", "1.mkv"),
		filepath.Join("Alpha", "2.mkv"),
	)

	if err := newExtractor(cfg, &fakeUnrar{}).ExtractOne(context.Background(), filepath.Join(root, "Alpha"), root); err != nil {
		t.Fatalf("ExtractOne: %v", err)
	}

	report, err := workflow.ReconcileIncoming(context.Background(), workflow.Options{Source: root}, nil)
	if err != nil {
		t.Fatalf("ReconcileIncoming: %v", err)
	}
	if !report.Empty() {
		t.Fatalf("a fresh extraction must reconcile cleanly, got %+v", report)
	}
}
