// Command reshelf batch-reorganizes a media collection: pattern and
// positional renames, timestamp touching, disc image conversion to CHD, and
// reconciliation of an incoming staging area against its !extract archive
// area.
package main
