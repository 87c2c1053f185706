// Package copier copies the binaries and documentation of one framework
// folder into an output directory.
package copier

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/filesystem"
	"github.com/arthur-debert/nue/pkg/logging"
	"github.com/arthur-debert/nue/pkg/types"
	"github.com/rs/zerolog"
)

// BinaryExtensions are the recognized binary suffixes, matched case-sensitively
var BinaryExtensions = []string{".dll", ".winmd"}

// DocExtension is the suffix of documentation files
const DocExtension = ".xml"

// Copier copies library content using a types.FS
type Copier struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a Copier on top of fsys
func New(fsys types.FS) *Copier {
	return &Copier{
		fs:     fsys,
		logger: logging.GetLogger("copier"),
	}
}

// Copy copies every binary directly inside source to dest, then the
// documentation files. It returns false and no binaries when the source
// cannot be listed or a binary cannot be copied. Documentation failures
// are logged and ignored.
func (c *Copier) Copy(source, dest string, pkg types.PackageAtom) (bool, []string) {
	binaries, err := c.CopyBinaries(source, dest, pkg)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("package", pkg.Name).
			Str("source", source).
			Msg("Could not get binaries")
		return false, nil
	}

	docs, err := c.CopyDocs(source, dest, pkg)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("package", pkg.Name).
			Str("source", source).
			Msg("Could not get documentation files")
	}

	c.logger.Info().
		Str("package", pkg.Name).
		Str("source", source).
		Str("dest", dest).
		Int("binaries", len(binaries)).
		Int("docs", len(docs)).
		Msg("Copied library content")

	return true, binaries
}

// CopyBinaries lists and copies the binaries. Listing happens before any
// copy, so a listing failure leaves dest untouched.
func (c *Copier) CopyBinaries(source, dest string, pkg types.PackageAtom) ([]string, error) {
	binaries, err := filesystem.ListFiles(c.fs, source, IsBinary)
	if err != nil {
		return nil, err
	}
	binaries = c.applyExclusions(pkg, binaries)

	if err := c.copyAll(source, dest, binaries); err != nil {
		return nil, err
	}
	return binaries, nil
}

// CopyDocs lists and copies the documentation files
func (c *Copier) CopyDocs(source, dest string, pkg types.PackageAtom) ([]string, error) {
	docs, err := filesystem.ListFiles(c.fs, source, IsDoc)
	if err != nil {
		return nil, err
	}
	docs = c.applyExclusions(pkg, docs)

	if err := c.copyAll(source, dest, docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *Copier) applyExclusions(pkg types.PackageAtom, names []string) []string {
	excluded := pkg.CustomProperties.ExcludedDlls
	kept := excluded.Filter(names)
	if len(kept) != len(names) {
		c.logger.Debug().
			Str("package", pkg.Name).
			Strs("patterns", excluded.Patterns()).
			Int("excluded", len(names)-len(kept)).
			Msg("Applied exclusions")
	}
	return kept
}

func (c *Copier) copyAll(source, dest string, names []string) error {
	if len(names) == 0 {
		return nil
	}
	if err := c.fs.MkdirAll(dest, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dest)
	}
	for _, name := range names {
		if err := filesystem.CopyFile(c.fs, filepath.Join(source, name), filepath.Join(dest, name)); err != nil {
			return errors.Wrapf(err, errors.ErrCopyFailed, "cannot copy %s", name)
		}
		c.logger.Trace().Str("file", name).Str("dest", dest).Msg("Copied file")
	}
	return nil
}

// IsBinary reports whether name ends in a recognized binary extension
func IsBinary(name string) bool {
	for _, ext := range BinaryExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// IsDoc reports whether name is a documentation file
func IsDoc(name string) bool {
	return strings.HasSuffix(name, DocExtension)
}
