package cli

import (
	"fmt"

	"github.com/arthur-debert/gestures/internal/version"
	"github.com/arthur-debert/gestures/pkg/codec"
	"github.com/arthur-debert/gestures/pkg/config"
	"github.com/arthur-debert/gestures/pkg/errors"
	"github.com/arthur-debert/gestures/pkg/library"
	"github.com/arthur-debert/gestures/pkg/logging"
	"github.com/arthur-debert/gestures/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// runtime carries what PersistentPreRunE resolved for the subcommands
type runtime struct {
	verbosity   int
	libraryPath string
	codecName   string

	paths paths.Paths
	cfg   *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	rt := &runtime{}

	rootCmd := &cobra.Command{
		Use:     "gestures",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.resolve(cmd); err != nil {
				return err
			}
			logging.SetupLogger(rt.verbosity)
			logging.LogCommand(cmd.Name(), args)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&rt.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVarP(&rt.libraryPath, "library", "l", "", "Library file (default $XDG_DATA_HOME/gestures/gestures.lib)")
	rootCmd.PersistentFlags().StringVar(&rt.codecName, "codec", "", fmt.Sprintf("Library file format %v", codec.Names()))

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newInfoCmd(rt))
	rootCmd.AddCommand(newListCmd(rt))
	rootCmd.AddCommand(newAddCmd(rt))
	rootCmd.AddCommand(newRemoveCmd(rt))
	rootCmd.AddCommand(newExportCmd(rt))
	rootCmd.AddCommand(newImportCmd(rt))
	rootCmd.AddCommand(newConfigCmd(rt))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// resolve loads paths and configuration, with changed flags applied as
// overrides on top of the file and environment.
func (rt *runtime) resolve(cmd *cobra.Command) error {
	p, err := paths.New()
	if err != nil {
		return err
	}

	cfg, err := config.LoadWithOverrides(p, rt.overrides(cmd))
	if err != nil {
		return err
	}
	rt.verbosity = cfg.Logging.Verbosity

	rt.paths = p
	rt.cfg = cfg
	return nil
}

// overrides collects the flags the user actually set
func (rt *runtime) overrides(cmd *cobra.Command) config.Overrides {
	o := config.Overrides{}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		o["logging.verbosity"] = rt.verbosity
	}
	if flags.Changed("library") {
		o["library.path"] = rt.libraryPath
	}
	if flags.Changed("codec") {
		o["library.codec"] = rt.codecName
	}
	return o
}

// libraryOptions builds library options for codecName, falling back to the
// configured codec when it is empty.
func (rt *runtime) libraryOptions(codecName string) ([]library.Option, error) {
	if codecName == "" {
		codecName = rt.cfg.Library.Codec
	}
	c, err := codec.Get(codecName)
	if err != nil {
		return nil, err
	}
	dirMode, err := rt.cfg.Library.DirPerm()
	if err != nil {
		return nil, err
	}
	fileMode, err := rt.cfg.Library.FilePerm()
	if err != nil {
		return nil, err
	}
	return []library.Option{
		library.WithCodec(c),
		library.WithDirMode(dirMode),
		library.WithFileMode(fileMode),
		library.WithLogger(logging.GetLogger("library")),
	}, nil
}

// openLibrary binds the configured library and loads it. A library file
// that does not exist yet is treated as empty.
func (rt *runtime) openLibrary() (library.Library, error) {
	opts, err := rt.libraryOptions("")
	if err != nil {
		return nil, err
	}

	lib := library.FromFile(rt.cfg.Library.Path, opts...)
	if err := lib.TryLoad(); err != nil && !errors.IsErrorCode(err, errors.ErrFileNotFound) {
		return nil, err
	}
	return lib, nil
}

// entryCompletion provides shell completion for entry names
func (rt *runtime) entryCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if rt.cfg == nil {
		if err := rt.resolve(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
	}
	lib, err := rt.openLibrary()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return lib.Entries(), cobra.ShellCompDirectiveNoFileComp
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "gestures version %s\n", version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
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
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
