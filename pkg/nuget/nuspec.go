package nuget

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/filesystem"
	"github.com/arthur-debert/nue/pkg/types"
	"github.com/beevik/etree"
)

// Nuspec holds the manifest fields nue cares about
type Nuspec struct {
	ID      string
	Version string
}

// ParseNuspec reads the metadata of a .nuspec document. The nuspec schema
// namespace varies between versions, so elements are matched by local name.
func ParseNuspec(data []byte) (Nuspec, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return Nuspec{}, errors.Wrap(err, errors.ErrConfigParse, "cannot parse nuspec")
	}

	metadata := doc.FindElement("//metadata")
	if metadata == nil {
		return Nuspec{}, errors.New(errors.ErrConfigParse, "nuspec has no metadata element")
	}

	spec := Nuspec{
		ID:      childText(metadata, "id"),
		Version: childText(metadata, "version"),
	}
	if spec.ID == "" {
		return Nuspec{}, errors.New(errors.ErrConfigParse, "nuspec has no id")
	}
	return spec, nil
}

// ReadNuspec finds and parses the .nuspec directly inside pkgDir
func ReadNuspec(fsys types.FS, pkgDir string) (Nuspec, error) {
	names, err := filesystem.ListFiles(fsys, pkgDir, func(name string) bool {
		return strings.EqualFold(filepath.Ext(name), ".nuspec")
	})
	if err != nil {
		return Nuspec{}, err
	}
	if len(names) == 0 {
		return Nuspec{}, errors.Newf(errors.ErrNotFound, "no nuspec in %s", pkgDir)
	}

	data, err := fsys.ReadFile(filepath.Join(pkgDir, names[0]))
	if err != nil {
		return Nuspec{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", names[0])
	}
	return ParseNuspec(data)
}

func childText(parent *etree.Element, tag string) string {
	if el := parent.SelectElement(tag); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}
