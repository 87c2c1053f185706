package nue

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Resolve NuGet package binaries for a build"
	MsgResolveShort    = "Install packages and copy their best-fitting binaries"
	MsgMatchShort      = "Show which framework folder a TFM selects"
	MsgCommandShort    = "Print the installer command for a package"
	MsgCommandLong     = "Command prints the NuGet install command line nue would run for a package, using the configured defaults."
	MsgCleanShort      = "Delete extracted packages"
	MsgCleanLong       = "Clean deletes the packages directory, resetting read-only files first. With --all the output directory is removed too."
	MsgGenConfigShort  = "Generate a starter nue.toml"
	MsgGenConfigLong   = "Output a commented starter configuration to stdout, or write it to ./nue.toml with -w."
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgMatchResult     = "%s (strategy %s, version %s)\n"
	MsgCleaned         = "Removed %s\n"
	MsgConfigWritten   = "Wrote %s\n"
	MsgNoPackages      = "No packages to resolve. Pass package names or add [[packages]] to nue.toml."
	MsgContinueSummary = "%d of %d packages failed"
	MsgWarnNoTFM       = "No target framework set for these packages; use --tfm, run.tfm or a per-package tfm"

	// Error messages
	MsgErrConfigExists = "%s already exists, use --force to overwrite"
	MsgErrNoMatch      = "no folder fits %s"

	// Flag descriptions
	MsgFlagVerbose         = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig          = "Config file (default ./nue.toml, then $XDG_CONFIG_HOME/nue/nue.toml)"
	MsgFlagPackagesConfig  = "Also resolve the packages listed in a packages.config file"
	MsgFlagTFM             = "Default target framework moniker, e.g. net462"
	MsgFlagFeed            = "Default package source"
	MsgFlagOutput          = "Output root; each package goes to <output>/<moniker>"
	MsgFlagPackagesPath    = "Directory the installer extracts packages into"
	MsgFlagNuget           = "Installer executable"
	MsgFlagNugetConfig     = "NuGet.config passed to the installer (generated when empty)"
	MsgFlagLauncher        = "Command wrapping the installer, e.g. mono"
	MsgFlagKeepPackages    = "Keep extracted packages after copying"
	MsgFlagContinueOnError = "Resolve remaining packages after a failure"
	MsgFlagFormat          = "Output format: auto, term, text or json"
	MsgFlagPackageDir      = "Read candidates from the lib/ folder of an extracted package"
	MsgFlagWrite           = "Write ./nue.toml instead of printing"
	MsgFlagForce           = "Overwrite an existing file"
	MsgFlagCleanAll        = "Also delete the output directory"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/match-long.txt
	msgMatchLongRaw string
	MsgMatchLong    = strings.TrimSpace(msgMatchLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
