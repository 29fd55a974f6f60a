// Package walk lists files and directories under a root with the traversal
// policy shared by every reshelf workflow: optional dotfile skipping,
// optional recursion, and a single continue-on-error decision point.
package walk
