// Package config handles configuration management for nue.
// It layers embedded defaults, a TOML config file, NUE_* environment
// variables and command-line flags with koanf, and turns the result into
// the RunSettings and PackageAtoms the resolver consumes.
package config
