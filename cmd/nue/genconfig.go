package nue

import (
	"fmt"
	"os"

	"github.com/arthur-debert/nue/pkg/config"
	"github.com/arthur-debert/nue/pkg/errors"
	"github.com/arthur-debert/nue/pkg/paths"
	"github.com/spf13/cobra"
)

func newGenConfigCmd() *cobra.Command {
	var write, force bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: "  nue genconfig            # Output to stdout\n  nue genconfig -w         # Write to ./nue.toml",
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent(config.SampleConfig())
			if err != nil {
				return err
			}
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			target := paths.ConfigFileName
			if _, err := os.Stat(target); err == nil && !force {
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigExists, target)
			}
			if err := os.WriteFile(target, []byte(content), 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", target)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, target)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}
