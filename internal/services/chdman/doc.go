// Package chdman wraps the MAME chdman CLI for disc image conversion and
// verification.
package chdman
