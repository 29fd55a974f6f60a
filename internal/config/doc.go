// Package config loads, normalizes, and validates reshelf configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: external tool locations, extract whitelists, and log
// routing. Always obtain settings through this package so workflows receive
// sanitized absolute paths and canonical extension lists.
package config
