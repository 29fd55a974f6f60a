// Package naming computes destination filenames for batch renames. All
// functions are pure; callers pair the results with paths and hand them to
// fileops.
package naming
