// Package fileops performs the filesystem-level actions behind batch
// workflows: moving, copying, touching, and directory creation. Every
// mutating operation logs its intent before acting and honors dry-run by
// skipping only the action, never the log line.
package fileops
