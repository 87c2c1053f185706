// Package mapping keeps the bookkeeping written next to resolved binaries:
// which package, version and framework folder every copied assembly came
// from. The table is stored as YAML so it diffs cleanly in source control.
package mapping

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/paths"
	"github.com/arthur-debert/nue/pkg/types"
	"gopkg.in/yaml.v3"
)

// PackageInfo describes one resolved package
type PackageInfo struct {
	Name     string   `yaml:"name"`
	Version  string   `yaml:"version,omitempty"`
	TFM      string   `yaml:"tfm"`
	Folder   string   `yaml:"folder"`
	Binaries []string `yaml:"binaries"`
}

// Table maps package monikers to package info and assemblies to the
// moniker that provided them
type Table struct {
	Packages   map[string]PackageInfo `yaml:"packages"`
	Assemblies map[string]string      `yaml:"assemblies"`
}

// New returns an empty table
func New() *Table {
	return &Table{
		Packages:   make(map[string]PackageInfo),
		Assemblies: make(map[string]string),
	}
}

// Record adds the binaries copied for pkg. A later record for the same
// moniker replaces the earlier one; an assembly already provided by
// another package is reassigned to pkg.
func (t *Table) Record(pkg types.PackageAtom, version, tfm, folder string, binaries []types.Binary) {
	if prev, ok := t.Packages[pkg.Moniker]; ok {
		for _, name := range prev.Binaries {
			if t.Assemblies[name] == pkg.Moniker {
				delete(t.Assemblies, name)
			}
		}
	}

	names := make([]string, 0, len(binaries))
	for _, b := range binaries {
		names = append(names, b.FileName)
		t.Assemblies[b.FileName] = pkg.Moniker
	}
	sort.Strings(names)

	t.Packages[pkg.Moniker] = PackageInfo{
		Name:     pkg.Name,
		Version:  version,
		TFM:      tfm,
		Folder:   folder,
		Binaries: names,
	}
}

// Merge copies every package of other into t
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	monikers := make([]string, 0, len(other.Packages))
	for m := range other.Packages {
		monikers = append(monikers, m)
	}
	sort.Strings(monikers)

	for _, m := range monikers {
		info := other.Packages[m]
		binaries := make([]types.Binary, 0, len(info.Binaries))
		for _, name := range info.Binaries {
			binaries = append(binaries, types.Binary{FileName: name})
		}
		t.Record(types.PackageAtom{Name: info.Name, Moniker: m}, info.Version, info.TFM, info.Folder, binaries)
	}
}

// Owner returns the moniker of the package that provided assembly
func (t *Table) Owner(assembly string) (string, bool) {
	m, ok := t.Assemblies[assembly]
	return m, ok
}

// Len returns the number of packages in the table
func (t *Table) Len() int {
	return len(t.Packages)
}

// Path returns the mapping file location under outputRoot
func Path(outputRoot string) string {
	return filepath.Join(outputRoot, paths.MappingFileName)
}

// Load reads the mapping file under outputRoot. A missing file yields an
// empty table.
func Load(fsys types.FS, outputRoot string) (*Table, error) {
	path := Path(outputRoot)
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}

	t := New()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse %s", path)
	}
	if t.Packages == nil {
		t.Packages = make(map[string]PackageInfo)
	}
	if t.Assemblies == nil {
		t.Assemblies = make(map[string]string)
	}
	return t, nil
}

// Save writes the table under outputRoot
func (t *Table) Save(fsys types.FS, outputRoot string) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot encode assembly mapping")
	}
	if err := fsys.MkdirAll(outputRoot, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", outputRoot)
	}
	path := Path(outputRoot)
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	return nil
}
