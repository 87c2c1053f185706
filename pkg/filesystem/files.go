package filesystem

import (
	"path/filepath"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/types"
)

// ListFiles returns the names of regular files directly inside dir
// whose name passes keep. Subdirectories are never descended into.
func ListFiles(fsys types.FS, dir string, keep func(name string) bool) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEnumeration, "cannot list %s", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if keep == nil || keep(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// ListDirs returns the full paths of the directories directly inside dir
func ListDirs(fsys types.FS, dir string) ([]string, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEnumeration, "cannot list %s", dir)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(dir, entry.Name()))
		}
	}
	return dirs, nil
}

// CopyFile copies src to dst, replacing dst when it exists. A read-only
// destination is made writable first so the overwrite cannot fail on it.
func CopyFile(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", src)
	}
	data, err := fsys.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", src)
	}

	if existing, err := fsys.Stat(dst); err == nil && existing.Mode().Perm()&0200 == 0 {
		if err := fsys.Chmod(dst, existing.Mode().Perm()|0200); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot make %s writable", dst)
		}
	}

	if err := fsys.WriteFile(dst, data, info.Mode().Perm()|0200); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst)
	}
	return nil
}

// Exists reports whether path can be stat'ed
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
