package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/nuget"
	"github.com/arthur-debert/nue/pkg/paths"
	"github.com/arthur-debert/nue/pkg/types"
)

// Validate checks the decoded configuration
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Run.Nuget) == "" {
		return errors.New(errors.ErrConfigValid, "run.nuget must name the installer executable")
	}
	for i, p := range c.Packages {
		if strings.TrimSpace(p.Name) == "" {
			return errors.Newf(errors.ErrConfigValid, "packages[%d] has no name", i).
				WithDetail("index", i)
		}
	}
	return nil
}

// RunSettings converts the [run] table
func (c *Config) RunSettings() types.RunSettings {
	return types.RunSettings{
		TFM:          strings.TrimSpace(c.Run.TFM),
		Feed:         strings.TrimSpace(c.Run.Feed),
		OutputPath:   c.Run.Output,
		PackagesPath: c.Run.PackagesPath,
		ConfigPath:   c.Run.NugetConfig,
		NugetPath:    c.Run.Nuget,
		Launcher:     strings.TrimSpace(c.Run.Launcher),
		KeepPackages: c.Run.KeepPackages,
	}
}

// MissingTFM returns the names of pkgs that have no target framework of
// their own while rs has none either. Those packages can never match a
// framework folder.
func MissingTFM(rs types.RunSettings, pkgs []types.PackageAtom) []string {
	if rs.TFM != "" {
		return nil
	}
	var missing []string
	for _, p := range pkgs {
		if p.CustomProperties.TFM == "" {
			missing = append(missing, p.Name)
		}
	}
	return missing
}

// PackageAtoms converts every [[packages]] entry, failing on the first
// invalid one
func (c *Config) PackageAtoms() ([]types.PackageAtom, error) {
	atoms := make([]types.PackageAtom, 0, len(c.Packages))
	for _, p := range c.Packages {
		atom, err := types.NewPackageAtom(p.Options())
		if err != nil {
			return nil, err
		}
		atoms = append(atoms, atom)
	}
	return atoms, nil
}

// Options maps a config entry onto the package constructor inputs
func (p PackageConfig) Options() types.PackageOptions {
	return types.PackageOptions{
		Name:       p.Name,
		Version:    p.Version,
		Prerelease: p.Prerelease,
		Moniker:    p.Moniker,
		TFM:        p.TFM,
		Feed:       p.Feed,
		Exclude:    p.Exclude,
	}
}

// ImportPackagesConfig reads a packages.config file and turns its entries
// into package entries pinned to their listed version and framework
func ImportPackagesConfig(path string) ([]PackageConfig, error) {
	data, err := os.ReadFile(paths.ExpandHome(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read %s", path)
	}
	refs, err := nuget.ParsePackagesConfig(data)
	if err != nil {
		return nil, err
	}

	pkgs := make([]PackageConfig, 0, len(refs))
	for _, ref := range refs {
		pkgs = append(pkgs, PackageConfig{
			Name:    ref.ID,
			Version: ref.Version,
			TFM:     ref.TargetFramework,
		})
	}
	return pkgs, nil
}

// ParsePackageSpec reads a command line package argument of the form
// Name or Name@Version
func ParsePackageSpec(spec string) (PackageConfig, error) {
	spec = strings.TrimSpace(spec)
	name, version, _ := strings.Cut(spec, "@")
	name = strings.TrimSpace(name)
	if name == "" {
		return PackageConfig{}, errors.Newf(errors.ErrInvalidInput, "invalid package %q", spec)
	}
	return PackageConfig{Name: name, Version: strings.TrimSpace(version)}, nil
}
