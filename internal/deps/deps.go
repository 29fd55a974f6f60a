// Package deps reports the availability of the external binaries reshelf
// shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"reshelf/internal/config"
)

// Requirement defines an external dependency reshelf relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// For returns the requirements implied by the configuration. Both tools are
// optional at startup; workflows that need one fail fast when it is absent.
func For(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "chdman",
			Command:     cfg.Tools.Chdman,
			Description: "Required for disc image conversion and verification",
			Optional:    true,
		},
		{
			Name:        "unrar",
			Command:     cfg.Tools.Unrar,
			Description: "Required for archive extraction during extract runs",
			Optional:    true,
		},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
