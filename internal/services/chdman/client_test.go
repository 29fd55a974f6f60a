package chdman_test

import (
	"context"
	"errors"
	"testing"

	"reshelf/internal/services"
	"reshelf/internal/services/chdman"
)

type fakeExecutor struct {
	calls [][]string
	err   error
}

func (f *fakeExecutor) Run(_ context.Context, binary string, args []string, _ func(string)) error {
	f.calls = append(f.calls, append([]string{binary}, args...))
	return f.err
}

func TestClientVerbs(t *testing.T) {
	fake := &fakeExecutor{}
	client, err := chdman.New("chdman", chdman.WithExecutor(fake))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()
	if err := client.CreateDVD(ctx, "in.iso", "out.chd"); err != nil {
		t.Fatalf("CreateDVD: %v", err)
	}
	if err := client.CreateCD(ctx, "in.cue", "out.chd"); err != nil {
		t.Fatalf("CreateCD: %v", err)
	}
	if err := client.Verify(ctx, "out.chd"); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	want := [][]string{
		{"chdman", "createdvd", "-i", "in.iso", "-o", "out.chd"},
		{"chdman", "createcd", "-i", "in.cue", "-o", "out.chd"},
		{"chdman", "verify", "-i", "out.chd"},
	}
	if len(fake.calls) != len(want) {
		t.Fatalf("expected %d invocations, got %v", len(want), fake.calls)
	}
	for i := range want {
		for j := range want[i] {
			if fake.calls[i][j] != want[i][j] {
				t.Fatalf("invocation %d = %v, want %v", i, fake.calls[i], want[i])
			}
		}
	}
}

func TestClientDryRunSkipsExecution(t *testing.T) {
	fake := &fakeExecutor{}
	client, err := chdman.New("chdman", chdman.WithExecutor(fake), chdman.WithDryRun(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := client.CreateDVD(context.Background(), "in.iso", "out.chd"); err != nil {
		t.Fatalf("CreateDVD: %v", err)
	}
	if len(fake.calls) != 0 {
		t.Fatalf("dry-run must not spawn: %v", fake.calls)
	}
}

func TestClientTagsProcessErrors(t *testing.T) {
	fake := &fakeExecutor{err: errors.New("exit status 1")}
	client, err := chdman.New("chdman", chdman.WithExecutor(fake))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	err = client.Verify(context.Background(), "broken.chd")
	if !errors.Is(err, services.ErrProcess) {
		t.Fatalf("expected ErrProcess, got %v", err)
	}
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := chdman.New("   "); err == nil {
		t.Fatal("expected error for empty binary")
	}
}
