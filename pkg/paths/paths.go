// Package paths provides centralized path handling for nue.
// It follows the XDG Base Directory specification for the places nue
// keeps its own files and expands ~ in user supplied paths.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvNueConfigDir overrides the XDG config directory for nue
	EnvNueConfigDir = "NUE_CONFIG_DIR"

	// EnvNueCacheDir overrides the XDG cache directory for nue
	EnvNueCacheDir = "NUE_CACHE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// NueDirName is the directory name for nue-specific files
	NueDirName = "nue"

	// ConfigFileName is the name of the run configuration file
	ConfigFileName = "nue.toml"

	// PackagesDir is the cache subdirectory where packages are extracted
	PackagesDir = "packages"

	// DefaultOutputDir is the output root used when none is configured
	DefaultOutputDir = "_bin"

	// MappingFileName is the assembly mapping written after a run
	MappingFileName = "_assemblyMapping.yaml"
)

// ConfigDir returns the directory holding the user level nue.toml
func ConfigDir() string {
	if dir := os.Getenv(EnvNueConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, NueDirName)
}

// CacheDir returns the nue cache directory
func CacheDir() string {
	if dir := os.Getenv(EnvNueCacheDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.CacheHome, NueDirName)
}

// DefaultPackagesPath is where packages are extracted when not configured
func DefaultPackagesPath() string {
	return filepath.Join(CacheDir(), PackagesDir)
}

// ConfigCandidates lists config files in lookup order: the working
// directory first, then the user config dir
func ConfigCandidates() []string {
	return []string{
		ConfigFileName,
		filepath.Join(ConfigDir(), ConfigFileName),
	}
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
