package resolver

import (
	"path/filepath"
	"sort"
	"strings"

	"deps.dev/util/semver"
	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/filesystem"
	"github.com/arthur-debert/nue/pkg/nuget"
	"github.com/arthur-debert/nue/pkg/types"
)

// LocatePackage finds the folder the installer extracted pkg into and the
// version it holds.
//
// With an explicit version the folder must be named <Name>.<Version>.
// Otherwise every <Name>.<digit>... folder is a candidate, highest NuGet
// version first, and the first one whose .nuspec id is the package name
// wins.
func (r *Resolver) LocatePackage(pkg types.PackageAtom) (string, string, error) {
	root := r.settings.PackagesPath
	dirs, err := filesystem.ListDirs(r.fs, root)
	if err != nil {
		return "", "", errors.Wrapf(err, errors.ErrPackageNotFound, "cannot list %s", root)
	}

	if pkg.CustomVersionDefined() {
		want := pkg.Name + "." + pkg.CustomVersion
		for _, dir := range dirs {
			if strings.EqualFold(filepath.Base(dir), want) {
				return dir, pkg.CustomVersion, nil
			}
		}
		return "", "", errors.Newf(errors.ErrPackageNotFound, "%s not found in %s", want, root).
			WithDetail("package", pkg.Name)
	}

	candidates := versionedDirs(pkg.Name, dirs)
	for _, c := range candidates {
		spec, err := nuget.ReadNuspec(r.fs, c.dir)
		if err != nil {
			r.logger.Debug().Err(err).Str("path", c.dir).Msg("Skipping folder without readable nuspec")
			continue
		}
		if !strings.EqualFold(spec.ID, pkg.Name) {
			r.logger.Debug().Str("path", c.dir).Str("id", spec.ID).Msg("Skipping folder of another package")
			continue
		}
		version := spec.Version
		if version == "" {
			version = c.version
		}
		return c.dir, version, nil
	}

	return "", "", errors.Newf(errors.ErrPackageNotFound, "no folder for %s in %s", pkg.Name, root).
		WithDetail("package", pkg.Name)
}

type versionedDir struct {
	dir     string
	version string
	parsed  *semver.Version
}

// versionedDirs keeps <name>.<digit>... folders, highest NuGet version
// first. Suffixes that do not parse as a version sort after the rest, in
// descending string order.
func versionedDirs(name string, dirs []string) []versionedDir {
	prefix := strings.ToLower(name) + "."
	var found []versionedDir
	for _, dir := range dirs {
		base := filepath.Base(dir)
		if !strings.HasPrefix(strings.ToLower(base), prefix) {
			continue
		}
		version := base[len(prefix):]
		if version == "" || version[0] < '0' || version[0] > '9' {
			continue
		}
		candidate := versionedDir{dir: dir, version: version}
		if parsed, err := semver.NuGet.Parse(version); err == nil {
			candidate.parsed = parsed
		}
		found = append(found, candidate)
	}
	sort.SliceStable(found, func(i, j int) bool {
		return newerThan(found[i], found[j])
	})
	return found
}

func newerThan(a, b versionedDir) bool {
	switch {
	case a.parsed != nil && b.parsed != nil:
		return a.parsed.Compare(b.parsed) > 0
	case a.parsed != nil:
		return true
	case b.parsed != nil:
		return false
	}
	return a.version > b.version
}
