package testutil

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/nue/pkg/filesystem"
	"github.com/arthur-debert/nue/pkg/nuget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWritePackage(t *testing.T) {
	fsys := filesystem.NewMemory()
	dir := WritePackage(t, fsys, "/pkgs", "Foo", "1.2.3", "net45", "netstandard2.0")

	assert.Equal(t, "/pkgs/Foo.1.2.3", dir)
	spec, err := nuget.ReadNuspec(fsys, dir)
	require.NoError(t, err)
	assert.Equal(t, "Foo", spec.ID)
	assert.Equal(t, "1.2.3", spec.Version)

	data, err := fsys.ReadFile(filepath.Join(dir, "lib", "netstandard2.0", "Foo.dll"))
	require.NoError(t, err)
	assert.Equal(t, "netstandard2.0", string(data))
}

func TestErrorFS(t *testing.T) {
	boom := stderrors.New("boom")
	fsys := NewErrorFS(filesystem.NewMemory()).
		FailOn(OpWriteFile, ".xml", boom).
		FailOn(OpReadDir, "/locked", boom)

	WriteFiles(t, fsys, "/src", "a.dll")
	assert.ErrorIs(t, fsys.WriteFile("/src/a.xml", nil, 0644), boom)

	_, err := fsys.ReadDir("/locked")
	assert.ErrorIs(t, err, boom)

	entries, err := fsys.ReadDir("/src")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
