package resolver

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/nue/pkg/command"
	"github.com/arthur-debert/nue/pkg/copier"
	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/filesystem"
	"github.com/arthur-debert/nue/pkg/installer"
	"github.com/arthur-debert/nue/pkg/logging"
	"github.com/arthur-debert/nue/pkg/mapping"
	"github.com/arthur-debert/nue/pkg/nuget"
	"github.com/arthur-debert/nue/pkg/tfm"
	"github.com/arthur-debert/nue/pkg/types"
	"github.com/rs/zerolog"
)

// LibDir is the package subdirectory holding per-framework folders
const LibDir = "lib"

// Result describes one successful resolution
type Result struct {
	Package    types.PackageAtom
	PackageDir string
	Version    string
	TFM        string
	Folder     string
	Strategy   string
	OutputPath string
	Binaries   []types.Binary
}

// Resolver installs packages and copies their best-fitting binaries
type Resolver struct {
	fs       types.FS
	runner   installer.Runner
	copier   *copier.Copier
	settings types.RunSettings
	mapping  *mapping.Table
	logger   zerolog.Logger
}

// New creates a Resolver. A nil table starts an empty mapping.
func New(fsys types.FS, runner installer.Runner, settings types.RunSettings, table *mapping.Table) *Resolver {
	if table == nil {
		table = mapping.New()
	}
	return &Resolver{
		fs:       fsys,
		runner:   runner,
		copier:   copier.New(fsys),
		settings: settings,
		mapping:  table,
		logger:   logging.GetLogger("resolver"),
	}
}

// Mapping returns the table every successful resolution is recorded in
func (r *Resolver) Mapping() *mapping.Table {
	return r.mapping
}

// Settings returns the run settings the resolver was created with
func (r *Resolver) Settings() types.RunSettings {
	return r.settings
}

// CopyBinarySet resolves pkg into outputPath and reports success. Failures
// are logged, never returned.
func (r *Resolver) CopyBinarySet(ctx context.Context, pkg types.PackageAtom, outputPath string) bool {
	if _, err := r.Resolve(ctx, pkg, outputPath); err != nil {
		r.logger.Error().
			Err(err).
			Str("package", pkg.String()).
			Str("code", string(errors.GetErrorCode(err))).
			Msg("Could not resolve package")
		return false
	}
	return true
}

// Resolve installs pkg, picks its framework folder and copies the folder
// content into outputPath
func (r *Resolver) Resolve(ctx context.Context, pkg types.PackageAtom, outputPath string) (*Result, error) {
	done := logging.LogOperationStart(r.logger, "resolve "+pkg.String())
	defer done()

	if err := r.Install(ctx, pkg); err != nil {
		return nil, err
	}

	pkgDir, version, err := r.LocatePackage(pkg)
	if err != nil {
		return nil, err
	}
	if !r.settings.KeepPackages {
		defer r.discard(pkgDir)
	}

	requested := r.targetFramework(pkg)
	match, err := r.SelectFolder(pkgDir, requested)
	if err != nil {
		return nil, err
	}

	ok, names := r.copier.Copy(match.Path, outputPath, pkg)
	if !ok {
		return nil, errors.Newf(errors.ErrCopyFailed, "could not copy %s to %s", match.Path, outputPath).
			WithDetail("package", pkg.Name)
	}

	folder := filepath.Base(match.Path)
	binaries := make([]types.Binary, 0, len(names))
	for _, name := range names {
		binaries = append(binaries, types.Binary{
			FileName: name,
			Package:  pkg.Name,
			Version:  version,
			TFM:      folder,
		})
	}
	r.mapping.Record(pkg, version, requested, filepath.ToSlash(filepath.Join(LibDir, folder)), binaries)

	r.logger.Info().
		Str("package", pkg.Name).
		Str("version", version).
		Str("tfm", requested).
		Str("folder", folder).
		Str("strategy", match.Strategy).
		Int("binaries", len(binaries)).
		Msg("Package resolved")

	return &Result{
		Package:    pkg,
		PackageDir: pkgDir,
		Version:    version,
		TFM:        requested,
		Folder:     match.Path,
		Strategy:   match.Strategy,
		OutputPath: outputPath,
		Binaries:   binaries,
	}, nil
}

// Install runs the installer for pkg into the packages directory
func (r *Resolver) Install(ctx context.Context, pkg types.PackageAtom) error {
	configPath, err := r.ensureConfig()
	if err != nil {
		return err
	}
	if err := r.fs.MkdirAll(r.settings.PackagesPath, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", r.settings.PackagesPath)
	}

	name, args, err := r.Invocation(pkg, configPath)
	if err != nil {
		return err
	}

	r.logger.Debug().
		Str("package", pkg.String()).
		Str("command", command.BuildInstallCommand(pkg, r.settings.PackagesPath, configPath, r.settings)).
		Msg("Installing package")

	result, err := r.runner.Run(ctx, name, args)
	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			return errors.Wrapf(err, errors.ErrInstallFailed, "installing %s failed", pkg.String()).
				WithDetail("exitCode", result.ExitCode)
		}
		return err
	}
	if result.ExitCode != 0 {
		return errors.Newf(errors.ErrInstallFailed, "installing %s exited with code %d", pkg.String(), result.ExitCode).
			WithDetail("exitCode", result.ExitCode)
	}
	return nil
}

// Invocation returns the executable and arguments that install pkg. A
// configured launcher becomes the executable and the installer its first
// argument.
func (r *Resolver) Invocation(pkg types.PackageAtom, configPath string) (string, []string, error) {
	args := command.InstallArgs(pkg, r.settings.PackagesPath, configPath, r.settings)

	nugetPath := r.settings.NugetPath
	if nugetPath == "" {
		nugetPath = "nuget"
	}
	if strings.TrimSpace(r.settings.Launcher) == "" {
		return nugetPath, args, nil
	}

	launcher, err := command.Split(r.settings.Launcher)
	if err != nil {
		return "", nil, err
	}
	if len(launcher) == 0 {
		return nugetPath, args, nil
	}
	argv := append(append(launcher[1:], nugetPath), args...)
	return launcher[0], argv, nil
}

// ensureConfig returns the configured NuGet.config or writes one in the
// packages directory listing the run feed. The generated file is rewritten
// on every install so it follows feed changes.
func (r *Resolver) ensureConfig() (string, error) {
	if r.settings.ConfigPath != "" {
		if !filesystem.Exists(r.fs, r.settings.ConfigPath) {
			return "", errors.Newf(errors.ErrNotFound, "NuGet config %s does not exist", r.settings.ConfigPath)
		}
		return r.settings.ConfigPath, nil
	}

	var sources []nuget.Source
	if r.settings.Feed != "" {
		sources = append(sources, nuget.Source{Key: "feed", URL: r.settings.Feed})
	}
	sources = append(sources, nuget.Source{Key: "nuget.org", URL: command.FallbackSource})

	path, err := nuget.WriteConfig(r.fs, r.settings.PackagesPath, sources)
	if err != nil {
		return "", err
	}
	r.logger.Debug().Str("path", path).Msg("Generated NuGet config")
	return path, nil
}

func (r *Resolver) targetFramework(pkg types.PackageAtom) string {
	if pkg.CustomProperties.TFM != "" {
		return pkg.CustomProperties.TFM
	}
	return r.settings.TFM
}

// SelectFolder lists the framework folders of pkgDir and runs the folder
// matcher on them
func (r *Resolver) SelectFolder(pkgDir, requested string) (tfm.Match, error) {
	libDir := filepath.Join(pkgDir, LibDir)
	candidates, err := filesystem.ListDirs(r.fs, libDir)
	if err != nil || len(candidates) == 0 {
		return tfm.Match{}, errors.Newf(errors.ErrNoLibraries, "%s has no framework folders", libDir).
			WithDetail("path", libDir)
	}

	match, ok := tfm.Find(requested, candidates)
	if !ok {
		names := make([]string, 0, len(candidates))
		for _, c := range candidates {
			names = append(names, filepath.Base(c))
		}
		return tfm.Match{}, errors.Newf(errors.ErrNoMatch, "no folder in %s fits %q", libDir, requested).
			WithDetail("tfm", requested).
			WithDetail("candidates", names)
	}
	return match, nil
}

func (r *Resolver) discard(pkgDir string) {
	if err := filesystem.DeleteDirectory(r.fs, pkgDir); err != nil {
		r.logger.Warn().Err(err).Str("path", pkgDir).Msg("Could not remove extracted package")
	}
}
