// Package services defines the shared error vocabulary for reshelf
// workflows and the clients that wrap external tools.
//
// Every per-item failure inside a batch run is tagged with one of the
// sentinel errors below so orchestrators can classify it without string
// matching. Filesystem failures and external-process failures flow through
// the same channel and are treated identically by the run error policy.
package services
