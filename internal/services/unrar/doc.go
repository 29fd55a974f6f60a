// Package unrar wraps the unrar CLI for in-place archive extraction.
package unrar
