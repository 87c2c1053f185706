package nuget

import (
	"testing"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleNuspec = `<?xml version="1.0" encoding="utf-8"?>
<package xmlns="http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd">
  <metadata>
    <id>Contoso.Widgets</id>
    <version>2.1.0</version>
    <title>Contoso Widgets</title>
    <authors>Contoso</authors>
  </metadata>
</package>`

func TestRenderConfig(t *testing.T) {
	data, err := RenderConfig([]Source{
		{Key: "private", URL: "https://private.example/nuget"},
		{URL: "https://api.nuget.org/v3/index.json"},
	})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, `<?xml version="1.0" encoding="utf-8"?>`)
	assert.Contains(t, out, "<clear/>")
	assert.Contains(t, out, `<add key="private" value="https://private.example/nuget"/>`)
	assert.Contains(t, out, `<add key="source2" value="https://api.nuget.org/v3/index.json"/>`)

	sources, err := ReadConfigSources(data)
	require.NoError(t, err)
	assert.Equal(t, []Source{
		{Key: "private", URL: "https://private.example/nuget"},
		{Key: "source2", URL: "https://api.nuget.org/v3/index.json"},
	}, sources)
}

func TestWriteConfig(t *testing.T) {
	fsys := filesystem.NewMemory()

	path, err := WriteConfig(fsys, "/work", []Source{{Key: "feed", URL: "https://feed.example"}})
	require.NoError(t, err)
	assert.Equal(t, "/work/NuGet.config", path)

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "https://feed.example")
}

func TestParseNuspec(t *testing.T) {
	spec, err := ParseNuspec([]byte(sampleNuspec))
	require.NoError(t, err)
	assert.Equal(t, Nuspec{ID: "Contoso.Widgets", Version: "2.1.0"}, spec)
}

func TestParseNuspecErrors(t *testing.T) {
	_, err := ParseNuspec([]byte(`<package><nothing/></package>`))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	_, err = ParseNuspec([]byte(`<package><metadata><version>1.0</version></metadata></package>`))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))

	_, err = ParseNuspec([]byte(`not xml at all <`))
	assert.Error(t, err)
}

func TestReadNuspec(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/pkgs/Contoso.Widgets.2.1.0/lib", 0755))
	require.NoError(t, fsys.WriteFile("/pkgs/Contoso.Widgets.2.1.0/Contoso.Widgets.nuspec", []byte(sampleNuspec), 0644))

	spec, err := ReadNuspec(fsys, "/pkgs/Contoso.Widgets.2.1.0")
	require.NoError(t, err)
	assert.Equal(t, "Contoso.Widgets", spec.ID)

	require.NoError(t, fsys.MkdirAll("/pkgs/empty", 0755))
	_, err = ReadNuspec(fsys, "/pkgs/empty")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestParsePackagesConfig(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="utf-8"?>
<packages>
  <package id="Newtonsoft.Json" version="13.0.1" targetFramework="net472" />
  <package id="Contoso.Widgets" version="2.1.0" />
  <package version="9.9.9" />
</packages>`)

	refs, err := ParsePackagesConfig(data)
	require.NoError(t, err)
	assert.Equal(t, []PackageReference{
		{ID: "Newtonsoft.Json", Version: "13.0.1", TargetFramework: "net472"},
		{ID: "Contoso.Widgets", Version: "2.1.0"},
	}, refs)

	_, err = ParsePackagesConfig([]byte(`<configuration/>`))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
