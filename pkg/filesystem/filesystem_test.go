package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fs.WriteFile(testFile, testContent, 0644))

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	require.NoError(t, fs.MkdirAll(filepath.Join(tmpDir, "sub", "dir"), 0755))

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // test.txt and sub/

	require.NoError(t, fs.Remove(testFile))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestListFilesIsNotRecursive(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/lib/net45/nested", 0755))
	require.NoError(t, fs.WriteFile("/lib/net45/A.dll", []byte("a"), 0644))
	require.NoError(t, fs.WriteFile("/lib/net45/A.xml", []byte("a"), 0644))
	require.NoError(t, fs.WriteFile("/lib/net45/nested/B.dll", []byte("b"), 0644))

	all, err := ListFiles(fs, "/lib/net45", nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"A.dll", "A.xml"}, all)

	dlls, err := ListFiles(fs, "/lib/net45", func(name string) bool { return filepath.Ext(name) == ".dll" })
	require.NoError(t, err)
	assert.Equal(t, []string{"A.dll"}, dlls)
}

func TestListFilesMissingDir(t *testing.T) {
	_, err := ListFiles(NewMemory(), "/nope", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnumeration))
}

func TestListDirs(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/pkg/lib/net45", 0755))
	require.NoError(t, fs.MkdirAll("/pkg/lib/netstandard2.0", 0755))
	require.NoError(t, fs.WriteFile("/pkg/lib/_._", nil, 0644))

	dirs, err := ListDirs(fs, "/pkg/lib")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"/pkg/lib/net45", "/pkg/lib/netstandard2.0"}, dirs)
}

func TestCopyFileOverwrites(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/src", 0755))
	require.NoError(t, fs.MkdirAll("/dst", 0755))
	require.NoError(t, fs.WriteFile("/src/A.dll", []byte("new"), 0644))
	require.NoError(t, fs.WriteFile("/dst/A.dll", []byte("old"), 0644))

	require.NoError(t, CopyFile(fs, "/src/A.dll", "/dst/A.dll"))

	data, err := fs.ReadFile("/dst/A.dll")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCopyFileOverReadOnlyTarget(t *testing.T) {
	fs := NewOS()
	dir := t.TempDir()
	src := filepath.Join(dir, "A.dll")
	dst := filepath.Join(dir, "out.dll")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0444))

	require.NoError(t, CopyFile(fs, src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCopyFileMissingSource(t *testing.T) {
	err := CopyFile(NewMemory(), "/missing.dll", "/out.dll")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
}

func TestDeleteDirectoryWithReadOnlyFiles(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Foo.1.0.0")
	nested := filepath.Join(root, "lib", "net45")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Foo.nuspec"), []byte("x"), 0444))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "Foo.dll"), []byte("x"), 0444))
	require.NoError(t, os.Chmod(nested, 0555))

	require.NoError(t, DeleteDirectory(NewOS(), root))

	_, err := os.Stat(root)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteDirectoryLeavesSymlinkTargets(t *testing.T) {
	tmp := t.TempDir()
	outside := filepath.Join(tmp, "outside")
	require.NoError(t, os.MkdirAll(outside, 0755))
	target := filepath.Join(outside, "keep.dll")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0400))

	root := filepath.Join(tmp, "Foo.1.0.0")
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.Symlink(target, filepath.Join(root, "link.dll")))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "linkdir")))

	require.NoError(t, DeleteDirectory(NewOS(), root))

	_, err := os.Lstat(root)
	assert.True(t, os.IsNotExist(err))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0400), info.Mode().Perm())
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}

func TestDeleteDirectoryMissingIsNoop(t *testing.T) {
	assert.NoError(t, DeleteDirectory(NewOS(), filepath.Join(t.TempDir(), "absent")))
}

func TestDeleteDirectoryRejectsFiles(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.WriteFile("/file.txt", []byte("x"), 0644))

	err := DeleteDirectory(fs, "/file.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDeleteDirectoryInMemory(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.MkdirAll("/pkgs/Foo/lib/net45", 0755))
	require.NoError(t, fs.WriteFile("/pkgs/Foo/lib/net45/Foo.dll", []byte("x"), 0444))

	require.NoError(t, DeleteDirectory(fs, "/pkgs/Foo"))
	assert.False(t, Exists(fs, "/pkgs/Foo"))
	assert.True(t, Exists(fs, "/pkgs"))
}
