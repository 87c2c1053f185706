package nuget

import (
	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/beevik/etree"
)

// PackageReference is one <package> entry of a packages.config file
type PackageReference struct {
	ID              string
	Version         string
	TargetFramework string
}

// ParsePackagesConfig reads the package entries of a packages.config
// document. Entries without an id are skipped.
func ParsePackagesConfig(data []byte) ([]PackageReference, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse packages.config")
	}

	root := doc.SelectElement("packages")
	if root == nil {
		return nil, errors.New(errors.ErrConfigParse, "packages.config has no packages element")
	}

	var refs []PackageReference
	for _, el := range root.SelectElements("package") {
		id := el.SelectAttrValue("id", "")
		if id == "" {
			continue
		}
		refs = append(refs, PackageReference{
			ID:              id,
			Version:         el.SelectAttrValue("version", ""),
			TargetFramework: el.SelectAttrValue("targetFramework", ""),
		})
	}
	return refs, nil
}
