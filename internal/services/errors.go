package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTraversal marks failures listing or classifying directory entries.
	ErrTraversal = errors.New("traversal error")
	// ErrIO marks filesystem-level failures (rename, copy, utimes, mkdir).
	ErrIO = errors.New("io error")
	// ErrProcess marks spawn failures and nonzero exits from external tools.
	ErrProcess = errors.New("external tool error")
	// ErrConfiguration marks unusable run configuration.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes workflow context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, workflow, operation, message string, err error) error {
	detail := buildDetail(workflow, operation, message)
	if marker == nil {
		marker = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsPerItem reports whether the error is a per-item failure eligible for the
// continue-on-error policy. Configuration errors always halt the run.
func IsPerItem(err error) bool {
	return !errors.Is(err, ErrConfiguration)
}

func buildDetail(workflow, operation, message string) string {
	parts := make([]string, 0, 3)
	if workflow = strings.TrimSpace(workflow); workflow != "" {
		parts = append(parts, workflow)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "workflow failure"
	}
	return strings.Join(parts, ": ")
}
