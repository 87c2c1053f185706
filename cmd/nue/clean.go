package nue

import (
	"fmt"

	"github.com/arthur-debert/nue/pkg/filesystem"
	"github.com/spf13/cobra"
)

func newCleanCmd(opts *globalOptions) *cobra.Command {
	flags := &runFlags{}
	var all bool

	cmd := &cobra.Command{
		Use:     "clean",
		Short:   MsgCleanShort,
		Long:    MsgCleanLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, flags)
			if err != nil {
				return err
			}
			rs := cfg.RunSettings()

			targets := []string{rs.PackagesPath}
			if all {
				targets = append(targets, rs.OutputPath)
			}

			fsys := filesystem.NewOS()
			for _, dir := range targets {
				if err := filesystem.DeleteDirectory(fsys, dir); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgCleaned, dir)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, MsgFlagCleanAll)
	return cmd
}
