package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/nue/pkg/types"
	"github.com/stretchr/testify/require"
)

// WriteFiles creates dir and one file per name inside it. Each file holds
// its own name as content.
func WriteFiles(t testing.TB, fsys types.FS, dir string, names ...string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(dir, 0755))
	for _, name := range names {
		require.NoError(t, fsys.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
}

// Nuspec renders a minimal .nuspec document
func Nuspec(id, version string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
<package xmlns="http://schemas.microsoft.com/packaging/2013/05/nuspec.xsd">
  <metadata>
    <id>%s</id>
    <version>%s</version>
  </metadata>
</package>`, id, version)
}

// WritePackage lays out <root>/<id>.<version> the way the installer
// extracts it: a .nuspec plus lib/<framework>/<id>.dll and <id>.xml for
// every framework. The .dll content is the framework name. It returns the
// package directory.
func WritePackage(t testing.TB, fsys types.FS, root, id, version string, frameworks ...string) string {
	t.Helper()
	dir := filepath.Join(root, id+"."+version)
	require.NoError(t, fsys.MkdirAll(dir, 0755))
	require.NoError(t, fsys.WriteFile(filepath.Join(dir, id+".nuspec"), []byte(Nuspec(id, version)), 0644))

	for _, fw := range frameworks {
		lib := filepath.Join(dir, "lib", fw)
		require.NoError(t, fsys.MkdirAll(lib, 0755))
		require.NoError(t, fsys.WriteFile(filepath.Join(lib, id+".dll"), []byte(fw), 0644))
		require.NoError(t, fsys.WriteFile(filepath.Join(lib, id+".xml"), []byte("<doc/>"), 0644))
	}
	return dir
}
