package nuget

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/types"
	"github.com/beevik/etree"
)

// ConfigFileName is the name of generated installer configuration files
const ConfigFileName = "NuGet.config"

// Source is a named package source
type Source struct {
	Key string
	URL string
}

// RenderConfig builds a NuGet.config that clears inherited sources and
// lists only sources, in order
func RenderConfig(sources []Source) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)

	configuration := doc.CreateElement("configuration")
	packageSources := configuration.CreateElement("packageSources")
	packageSources.CreateElement("clear")
	for i, src := range sources {
		key := src.Key
		if key == "" {
			key = fmt.Sprintf("source%d", i+1)
		}
		add := packageSources.CreateElement("add")
		add.CreateAttr("key", key)
		add.CreateAttr("value", src.URL)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

// WriteConfig renders sources into dir/NuGet.config and returns its path
func WriteConfig(fsys types.FS, dir string, sources []Source) (string, error) {
	data, err := RenderConfig(sources)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot render NuGet.config")
	}
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dir)
	}
	path := filepath.Join(dir, ConfigFileName)
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	return path, nil
}

// ReadConfigSources returns the package sources declared in a NuGet.config
func ReadConfigSources(data []byte) ([]Source, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot parse NuGet.config")
	}

	var sources []Source
	for _, add := range doc.FindElements("//packageSources/add") {
		sources = append(sources, Source{
			Key: add.SelectAttrValue("key", ""),
			URL: add.SelectAttrValue("value", ""),
		})
	}
	return sources, nil
}
