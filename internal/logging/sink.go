package logging

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// FileSink is a truncate-on-open log file that forces every write to stable
// storage. Extract runs mirror their console output through one of these so
// the on-disk log is complete even if the process dies mid-run.
type FileSink struct {
	path string
	mu   sync.Mutex
	file *os.File
}

// NewFileSink creates (or truncates) the log file at path.
func NewFileSink(path string) (*FileSink, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("file sink: empty path")
	}
	if err := ensureLogDir(trimmed); err != nil {
		return nil, fmt.Errorf("ensure log dir: %w", err)
	}
	file, err := os.OpenFile(trimmed, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", trimmed, err)
	}
	return &FileSink{path: trimmed, file: file}, nil
}

// Write appends p to the file and syncs before returning.
func (s *FileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return 0, os.ErrClosed
	}
	n, err := s.file.Write(p)
	if err != nil {
		return n, err
	}
	return n, s.file.Sync()
}

// Close releases the file handle. Safe to call more than once.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// Path returns the on-disk location backing the sink.
func (s *FileSink) Path() string {
	return s.path
}
