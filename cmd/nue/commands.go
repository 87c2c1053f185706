package nue

import (
	"fmt"

	"github.com/arthur-debert/nue/internal/version"
	"github.com/arthur-debert/nue/pkg/cobrax/topics"
	"github.com/arthur-debert/nue/pkg/config"
	"github.com/arthur-debert/nue/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	verbosity      int
	configFile     string
	packagesConfig string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "nue",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.packagesConfig, "packages-config", "", MsgFlagPackagesConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newCommandCmd(opts))
	rootCmd.AddCommand(newCleanCmd(opts))
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	renderer := topics.NewGlamourRenderer()
	if !stdoutIsTerminal() {
		renderer.Style = "ascii"
	}
	if _, err := topics.InitializeWithOptions(rootCmd, helpTopics(), topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   renderer,
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// runFlags are the [run] overrides shared by resolve, command and clean
type runFlags struct {
	tfm          string
	feed         string
	output       string
	packagesPath string
	nuget        string
	nugetConfig  string
	launcher     string
	keepPackages bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.tfm, "tfm", "", MsgFlagTFM)
	cmd.Flags().StringVar(&f.feed, "feed", "", MsgFlagFeed)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVar(&f.packagesPath, "packages-path", "", MsgFlagPackagesPath)
	cmd.Flags().StringVar(&f.nuget, "nuget", "", MsgFlagNuget)
	cmd.Flags().StringVar(&f.nugetConfig, "nuget-config", "", MsgFlagNugetConfig)
	cmd.Flags().StringVar(&f.launcher, "launcher", "", MsgFlagLauncher)
	cmd.Flags().BoolVar(&f.keepPackages, "keep-packages", false, MsgFlagKeepPackages)
}

// overrides maps the flags the user actually set onto config keys
func (f *runFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	values := map[string]interface{}{}
	set := func(flag, key string, value interface{}) {
		if fl := cmd.Flags().Lookup(flag); fl != nil && fl.Changed {
			values[key] = value
		}
	}
	set("tfm", "run.tfm", f.tfm)
	set("feed", "run.feed", f.feed)
	set("output", "run.output", f.output)
	set("packages-path", "run.packages_path", f.packagesPath)
	set("nuget", "run.nuget", f.nuget)
	set("nuget-config", "run.nuget_config", f.nugetConfig)
	set("launcher", "run.launcher", f.launcher)
	set("keep-packages", "run.keep_packages", f.keepPackages)
	return values
}

func loadConfig(cmd *cobra.Command, opts *globalOptions, flags *runFlags) (*config.Config, error) {
	loadOpts := config.LoadOptions{
		ConfigFile:     opts.configFile,
		PackagesConfig: opts.packagesConfig,
	}
	if flags != nil {
		loadOpts.Overrides = flags.overrides(cmd)
	}
	return config.Load(loadOpts)
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil && helpCmd.Run != nil {
				helpCmd.Run(helpCmd, []string{"topics"})
				return nil
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nue version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
