package types

// RunSettings holds process-wide defaults for one run.
// It is read-only once resolution starts.
type RunSettings struct {
	// TFM is the default target framework moniker
	TFM string
	// Feed is the default package source
	Feed string
	// OutputPath is the root that per-package output folders are created under
	OutputPath string
	// PackagesPath is where the installer extracts packages
	PackagesPath string
	// ConfigPath is the NuGet.config handed to the installer; generated when empty
	ConfigPath string
	// NugetPath is the installer executable
	NugetPath string
	// Launcher optionally wraps the installer, e.g. "mono"
	Launcher string
	// KeepPackages leaves extracted packages in PackagesPath after a run
	KeepPackages bool
}

// Binary records one copied binary and the package it came from
type Binary struct {
	FileName string
	Package  string
	Version  string
	TFM      string
}
