package types

import (
	"strings"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/matchers"
)

// CustomProperties holds the per-package overrides read from configuration
type CustomProperties struct {
	// TFM overrides RunSettings.TFM for this package
	TFM string
	// CustomFeed overrides RunSettings.Feed for this package
	CustomFeed string
	// ExcludedDlls filters binaries and documentation files by bare file name
	ExcludedDlls *matchers.ExclusionSet
}

// PackageAtom identifies one package to resolve.
// Values are built once by NewPackageAtom and never mutated afterwards.
type PackageAtom struct {
	Name             string
	Moniker          string
	CustomVersion    string
	IsPrerelease     bool
	CustomProperties CustomProperties
}

// PackageOptions carries the raw inputs for NewPackageAtom
type PackageOptions struct {
	Name       string
	Version    string
	Prerelease bool
	Moniker    string
	TFM        string
	Feed       string
	Exclude    []string
}

// NewPackageAtom validates options and compiles the exclusion wildcards
func NewPackageAtom(opts PackageOptions) (PackageAtom, error) {
	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return PackageAtom{}, errors.New(errors.ErrInvalidInput, "package name must not be empty")
	}

	excluded, err := matchers.NewExclusionSet(opts.Exclude)
	if err != nil {
		return PackageAtom{}, errors.Wrapf(err, errors.ErrInvalidInput,
			"invalid exclusion pattern for package %s", name)
	}

	moniker := strings.TrimSpace(opts.Moniker)
	if moniker == "" {
		moniker = strings.ToLower(name)
	}

	return PackageAtom{
		Name:          name,
		Moniker:       moniker,
		CustomVersion: strings.TrimSpace(opts.Version),
		IsPrerelease:  opts.Prerelease,
		CustomProperties: CustomProperties{
			TFM:          strings.TrimSpace(opts.TFM),
			CustomFeed:   strings.TrimSpace(opts.Feed),
			ExcludedDlls: excluded,
		},
	}, nil
}

// CustomVersionDefined reports whether an explicit version was requested
func (p PackageAtom) CustomVersionDefined() bool {
	return p.CustomVersion != ""
}

// IsExcluded reports whether fileName matches one of the package exclusions
func (p PackageAtom) IsExcluded(fileName string) bool {
	return p.CustomProperties.ExcludedDlls.Matches(fileName)
}

// String returns Name or Name@Version
func (p PackageAtom) String() string {
	if p.CustomVersionDefined() {
		return p.Name + "@" + p.CustomVersion
	}
	return p.Name
}
