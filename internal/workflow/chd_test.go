package workflow_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reshelf/internal/services"
	"reshelf/internal/testsupport"
	"reshelf/internal/workflow"
)

type fakeConverter struct {
	dvd      []string
	cd       []string
	verified []string
	failOn   string
}

func (f *fakeConverter) CreateDVD(_ context.Context, input, output string) error {
	if filepath.Base(input) == f.failOn {
		return services.Wrap(services.ErrProcess, "chd", "createdvd", input, errors.New("exit status 1"))
	}
	f.dvd = append(f.dvd, input+" -> "+output)
	return nil
}

func (f *fakeConverter) CreateCD(_ context.Context, input, output string) error {
	if filepath.Base(input) == f.failOn {
		return services.Wrap(services.ErrProcess, "chd", "createcd", input, errors.New("exit status 1"))
	}
	f.cd = append(f.cd, input+" -> "+output)
	return nil
}

func (f *fakeConverter) Verify(_ context.Context, path string) error {
	f.verified = append(f.verified, path)
	return nil
}

func TestConvertCHDMapsExtensionsToVerbs(t *testing.T) {
	root := t.TempDir()
	dest := t.TempDir()
	testsupport.WriteTree(t, root,
		"game.iso",
		filepath.Join("dreamcast", "race.gdi"),
		"music.cue",
		"notes.txt",
	)

	fake := &fakeConverter{}
	opts := workflow.Options{Source: root, Dest: dest}
	if err := workflow.ConvertCHD(context.Background(), opts, fake, nil); err != nil {
		t.Fatalf("ConvertCHD: %v", err)
	}

	if len(fake.dvd) != 1 {
		t.Fatalf("expected one createdvd call, got %v", fake.dvd)
	}
	if len(fake.cd) != 2 {
		t.Fatalf("expected two createcd calls, got %v", fake.cd)
	}
	// Every conversion is followed by a verify of the produced file.
	if len(fake.verified) != 3 {
		t.Fatalf("expected three verify calls, got %v", fake.verified)
	}
	for _, v := range fake.verified {
		if filepath.Ext(v) != ".chd" || filepath.Dir(v) != dest {
			t.Fatalf("verify target should be a chd under dest: %q", v)
		}
	}
}

func TestConvertCHDHaltPolicyStopsAtFirstFailure(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, "a.iso", "b.iso", "c.iso", "d.iso", "e.iso")

	fake := &fakeConverter{failOn: "b.iso"}
	opts := workflow.Options{Source: root, Dest: t.TempDir(), OnError: services.Halt}
	err := workflow.ConvertCHD(context.Background(), opts, fake, nil)
	if !errors.Is(err, services.ErrProcess) {
		t.Fatalf("expected process error to propagate, got %v", err)
	}
	// a converted, b failed, c..e never attempted.
	if len(fake.dvd) != 1 {
		t.Fatalf("halt policy must stop remaining items, got %v", fake.dvd)
	}
}

func TestConvertCHDContinuePolicyProcessesAll(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, "a.iso", "b.iso", "c.iso", "d.iso", "e.iso")

	fake := &fakeConverter{failOn: "b.iso"}
	opts := workflow.Options{Source: root, Dest: t.TempDir(), OnError: services.ContinueAndRecord}
	if err := workflow.ConvertCHD(context.Background(), opts, fake, nil); err != nil {
		t.Fatalf("continue policy must swallow per-item failures: %v", err)
	}
	if len(fake.dvd) != 4 {
		t.Fatalf("expected the four healthy images converted, got %v", fake.dvd)
	}
}

func TestConvertCHDPreflightRejectsBadDest(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteTree(t, root, "a.iso")

	// dest parent is a plain file, so the directory check must fail
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	fake := &fakeConverter{}
	opts := workflow.Options{Source: root, Dest: filepath.Join(blocker, "dest")}
	err := workflow.ConvertCHD(context.Background(), opts, fake, nil)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error from preflight, got %v", err)
	}
	if len(fake.dvd) != 0 {
		t.Fatalf("no image may be converted after a failed preflight: %v", fake.dvd)
	}
}

func TestConvertCHDDryRunCreatesNoDest(t *testing.T) {
	root := t.TempDir()
	dest := filepath.Join(t.TempDir(), "dest")
	testsupport.WriteTree(t, root, "a.iso")

	fake := &fakeConverter{}
	opts := workflow.Options{Source: root, Dest: dest, DryRun: true}
	if err := workflow.ConvertCHD(context.Background(), opts, fake, nil); err != nil {
		t.Fatalf("ConvertCHD: %v", err)
	}

	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Fatalf("dry-run must not create the destination directory: %v", err)
	}
}

func TestConvertCHDRequiresConverter(t *testing.T) {
	err := workflow.ConvertCHD(context.Background(), workflow.Options{Source: t.TempDir()}, nil, nil)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
