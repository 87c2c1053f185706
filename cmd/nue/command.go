package nue

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/nue/pkg/command"
	"github.com/arthur-debert/nue/pkg/nuget"
	"github.com/spf13/cobra"
)

func newCommandCmd(opts *globalOptions) *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:     "command <package[@version]>",
		Short:   MsgCommandShort,
		Long:    MsgCommandLong,
		Example: "  nue command Moq@4.13.1 --tfm net462",
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, flags)
			if err != nil {
				return err
			}
			pkgs, err := packagesToResolve(cfg, args)
			if err != nil {
				return err
			}

			rs := cfg.RunSettings()
			configPath := rs.ConfigPath
			if configPath == "" {
				configPath = filepath.Join(rs.PackagesPath, nuget.ConfigFileName)
			}
			fmt.Fprintln(cmd.OutOrStdout(), command.BuildInstallCommand(pkgs[0], rs.PackagesPath, configPath, rs))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
