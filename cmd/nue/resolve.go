package nue

import (
	"path/filepath"

	"github.com/arthur-debert/nue/pkg/config"
	"github.com/arthur-debert/nue/pkg/filesystem"
	"github.com/arthur-debert/nue/pkg/installer"
	"github.com/arthur-debert/nue/pkg/logging"
	"github.com/arthur-debert/nue/pkg/mapping"
	"github.com/arthur-debert/nue/pkg/resolver"
	"github.com/arthur-debert/nue/pkg/types"
	"github.com/arthur-debert/nue/pkg/ui"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

func newResolveCmd(opts *globalOptions) *cobra.Command {
	flags := &runFlags{}
	var (
		continueOnError bool
		format          string
	)

	cmd := &cobra.Command{
		Use:     "resolve [package[@version]...]",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := ui.ParseFormat(format)
			if err != nil {
				return err
			}
			renderer, err := ui.NewRenderer(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd, opts, flags)
			if err != nil {
				return err
			}
			pkgs, err := packagesToResolve(cfg, args)
			if err != nil {
				return err
			}
			if len(pkgs) == 0 {
				return renderer.RenderMessage(MsgNoPackages)
			}

			report, err := runResolve(cmd, cfg.RunSettings(), pkgs, continueOnError)
			if report != nil {
				if rerr := renderer.RenderReport(report); rerr != nil {
					return rerr
				}
			}
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, MsgFlagContinueOnError)
	cmd.Flags().StringVar(&format, "format", "auto", MsgFlagFormat)

	return cmd
}

// packagesToResolve returns the packages named on the command line, or the
// configured list when there are none
func packagesToResolve(cfg *config.Config, args []string) ([]types.PackageAtom, error) {
	if len(args) == 0 {
		return cfg.PackageAtoms()
	}

	pkgs := make([]types.PackageAtom, 0, len(args))
	for _, arg := range args {
		spec, err := config.ParsePackageSpec(arg)
		if err != nil {
			return nil, err
		}
		atom, err := types.NewPackageAtom(spec.Options())
		if err != nil {
			return nil, err
		}
		pkgs = append(pkgs, atom)
	}
	return pkgs, nil
}

// runResolve resolves pkgs one after the other into <output>/<moniker> and
// merges this run's assembly mapping into the saved one. Without continueOnError the first
// failure stops the run and is returned. With it every package is tried and
// the failures are only logged.
func runResolve(cmd *cobra.Command, rs types.RunSettings, pkgs []types.PackageAtom, continueOnError bool) (*ui.Report, error) {
	logger := logging.GetLogger("cmd.resolve")
	fsys := filesystem.NewOS()

	table, err := mapping.Load(fsys, rs.OutputPath)
	if err != nil {
		return nil, err
	}
	if missing := config.MissingTFM(rs, pkgs); len(missing) > 0 {
		logger.Warn().Strs("packages", missing).Msg(MsgWarnNoTFM)
	}

	run := mapping.New()
	res := resolver.New(fsys, installer.NewExecRunner(), rs, run)

	report := &ui.Report{OutputRoot: rs.OutputPath}
	var errs error
	for _, pkg := range pkgs {
		outputPath := filepath.Join(rs.OutputPath, pkg.Moniker)
		result, err := res.Resolve(cmd.Context(), pkg, outputPath)
		if err != nil {
			report.Add(ui.PackageReport{Name: pkg.Name, Version: pkg.CustomVersion}, err)
			errs = multierr.Append(errs, err)
			if !continueOnError {
				break
			}
			continue
		}
		report.Add(packageReport(result), nil)
	}

	if run.Len() > 0 {
		table.Merge(run)
		if err := table.Save(fsys, rs.OutputPath); err != nil {
			return report, err
		}
		report.Mapping = mapping.Path(rs.OutputPath)
	}

	if errs == nil {
		return report, nil
	}
	if continueOnError {
		failures := multierr.Errors(errs)
		logger.Warn().
			Err(errs).
			Msgf(MsgContinueSummary, len(failures), len(pkgs))
		return report, nil
	}
	return report, errs
}

func packageReport(r *resolver.Result) ui.PackageReport {
	names := make([]string, 0, len(r.Binaries))
	for _, b := range r.Binaries {
		names = append(names, b.FileName)
	}
	return ui.PackageReport{
		Name:     r.Package.Name,
		Version:  r.Version,
		TFM:      r.TFM,
		Folder:   filepath.Base(r.Folder),
		Strategy: r.Strategy,
		Output:   r.OutputPath,
		Binaries: names,
	}
}
