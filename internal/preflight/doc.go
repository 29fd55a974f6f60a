// Package preflight provides readiness checks for the filesystem paths and
// external binaries a workflow is about to lean on.
//
// Workflows that spawn chdman run these before enumerating anything so a
// doomed run fails in milliseconds instead of after gigabytes. The CLI
// status command reuses the same checks for display.
package preflight
