package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/logging"
	"github.com/arthur-debert/nue/pkg/types"
)

// DeleteDirectory removes dir and everything below it. Every file is made
// writable before it is removed, since extracted packages often ship
// read-only files. A missing dir is not an error.
func DeleteDirectory(fsys types.FS, dir string) error {
	logger := logging.GetLogger("filesystem.delete")

	info, err := fsys.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", dir).Msg("Directory does not exist, nothing to delete")
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", dir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput, "%s is not a directory", dir)
	}

	if err := clearDirectory(fsys, dir); err != nil {
		return err
	}

	if err := fsys.RemoveAll(dir); err != nil {
		return errors.Wrapf(err, errors.ErrDirDelete, "cannot remove %s", dir)
	}

	logger.Debug().Str("path", dir).Msg("Directory deleted")
	return nil
}

func clearDirectory(fsys types.FS, dir string) error {
	// the directory itself must be writable for its entries to be unlinked
	if err := fsys.Chmod(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirDelete, "cannot reset attributes on %s", dir)
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrEnumeration, "cannot list %s", dir)
	}

	var subdirs []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			subdirs = append(subdirs, path)
			continue
		}
		// chmod follows links; only the link itself is removed
		if entry.Type()&fs.ModeSymlink == 0 {
			if err := fsys.Chmod(path, 0644); err != nil && !os.IsNotExist(err) {
				return errors.Wrapf(err, errors.ErrDirDelete, "cannot reset attributes on %s", path)
			}
		}
		if err := fsys.Remove(path); err != nil {
			return errors.Wrapf(err, errors.ErrDirDelete, "cannot remove %s", path)
		}
	}

	for _, sub := range subdirs {
		if err := clearDirectory(fsys, sub); err != nil {
			return err
		}
	}
	return nil
}
