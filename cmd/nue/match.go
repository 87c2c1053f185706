package nue

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/filesystem"
	"github.com/arthur-debert/nue/pkg/resolver"
	"github.com/arthur-debert/nue/pkg/tfm"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	var packageDir string

	cmd := &cobra.Command{
		Use:     "match <tfm> [folder...]",
		Short:   MsgMatchShort,
		Long:    MsgMatchLong,
		Example: "  nue match net46 net40 net45 netstandard2.0\n  nue match netcoreapp3.1 --package-dir packages/Moq.4.13.1",
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requested, candidates := args[0], args[1:]
			if packageDir != "" {
				dirs, err := filesystem.ListDirs(filesystem.NewOS(), filepath.Join(packageDir, resolver.LibDir))
				if err != nil {
					return err
				}
				candidates = append(candidates, dirs...)
			}

			match, ok := tfm.Find(requested, candidates)
			if !ok {
				return errors.Newf(errors.ErrNoMatch, MsgErrNoMatch, requested).
					WithDetail("candidates", candidates)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgMatchResult, match.Path, match.Strategy, match.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&packageDir, "package-dir", "", MsgFlagPackageDir)
	return cmd
}
