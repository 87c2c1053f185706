// Package command builds the nuget.exe install invocation for a package.
package command

import (
	"strings"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/types"
	"mvdan.cc/sh/v3/shell"
)

// FallbackSource is always offered to the installer after the configured feeds
const FallbackSource = "https://api.nuget.org/v3/index.json"

// Installer flags
const (
	FlagOutputDirectory = "-OutputDirectory"
	FlagVerbosity       = "-Verbosity"
	FlagFallbackSource  = "-FallbackSource"
	FlagConfigFile      = "-ConfigFile"
	FlagFramework       = "-Framework"
	FlagSource          = "-Source"
	FlagVersion         = "-Version"
	FlagPreRelease      = "-PreRelease"
)

// quotedFlags take path values that are always rendered in double quotes
var quotedFlags = map[string]bool{
	FlagOutputDirectory: true,
	FlagConfigFile:      true,
}

// InstallArgs returns the installer arguments for pkg, without the
// executable. Package-level framework and feed override the run defaults.
func InstallArgs(pkg types.PackageAtom, rootPath, configPath string, rs types.RunSettings) []string {
	args := []string{
		"install", pkg.Name,
		FlagOutputDirectory, strings.Trim(rootPath, `"`),
		FlagVerbosity, "Quiet",
		FlagFallbackSource, FallbackSource,
		FlagConfigFile, strings.Trim(configPath, `"`),
	}

	if framework := firstNonBlank(pkg.CustomProperties.TFM, rs.TFM); framework != "" {
		args = append(args, FlagFramework, framework)
	}
	if source := firstNonBlank(pkg.CustomProperties.CustomFeed, rs.Feed); source != "" {
		args = append(args, FlagSource, source)
	}
	if pkg.CustomVersionDefined() {
		args = append(args, FlagVersion, pkg.CustomVersion)
	}
	if pkg.IsPrerelease {
		args = append(args, FlagPreRelease)
	}

	return args
}

// BuildInstallCommand renders InstallArgs as the single command line
// handed to the installer
func BuildInstallCommand(pkg types.PackageAtom, rootPath, configPath string, rs types.RunSettings) string {
	return Render(InstallArgs(pkg, rootPath, configPath, rs))
}

// Render joins args with spaces, quoting the values of path flags
func Render(args []string) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i > 0 && quotedFlags[args[i-1]] {
			b.WriteString(`"` + arg + `"`)
			continue
		}
		b.WriteString(arg)
	}
	return b.String()
}

// Split breaks a command line into words using shell quoting rules.
// $NAME references are kept as written.
func Split(cmdline string) ([]string, error) {
	words, err := shell.Fields(cmdline, func(name string) string { return "$" + name })
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCommandParse, "cannot parse command line %q", cmdline)
	}
	return words, nil
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
