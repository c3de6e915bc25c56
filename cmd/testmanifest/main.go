package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/testmanifest/internal/config"
	"github.com/quantmind-br/testmanifest/internal/disable"
	"github.com/quantmind-br/testmanifest/internal/matcher"
	"github.com/quantmind-br/testmanifest/internal/utils"
	"github.com/quantmind-br/testmanifest/pkg/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	cfg *config.Config
	log *utils.Logger
}

func newRootCmd() *cobra.Command {
	// Commands that skip setup still get a usable logger.
	a := &app{v: viper.New(), log: utils.NewDefaultLogger()}

	rootCmd := &cobra.Command{
		Use:   "testmanifest",
		Short: "Decide which tests are disabled on a platform",
		Long: `testmanifest reads a disabled-test manifest and decides whether a test
is disabled on the current platform.

Each manifest line names a test ("Suite.Test") or a whole suite ("Suite")
followed by regular expressions matched against the platform name. A test
that is disabled is reported with a DISABLED_ prefix.

The manifest path and platform come from flags, the config file
(~/.testmanifest/config.yaml), TESTMANIFEST_MANIFEST_PATH and
TESTMANIFEST_PLATFORM, or the legacy XLA_DISABLED_MANIFEST and XLA_PLATFORM
variables.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is "+config.ConfigFilePath()+")")
	flags.StringP("manifest", "m", "", "Disabled-test manifest file")
	flags.StringP("platform", "p", "", "Platform name matched against manifest patterns")
	flags.String("engine", config.DefaultEngine, "Regex engine: "+strings.Join(matcher.Engines(), " or "))
	flags.String("log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	flags.String("log-format", config.DefaultLogFormat, "Log format: pretty or json")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	_ = a.v.BindPFlag("manifest.path", flags.Lookup("manifest"))
	_ = a.v.BindPFlag("platform", flags.Lookup("platform"))
	_ = a.v.BindPFlag("matcher.engine", flags.Lookup("engine"))
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	rootCmd.AddCommand(
		newDecideCmd(a),
		newExplainCmd(a),
		newBatchCmd(a),
		newLintCmd(a),
		newDumpCmd(a),
		newWatchCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	}

	cfg, err := config.LoadWithViper(a.v)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	a.log = utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: a.verbose,
	})
	return nil
}

// decider builds a Decider from the loaded configuration.
func (a *app) decider() (*disable.Decider, error) {
	mt, err := a.cfg.NewMatcher()
	if err != nil {
		return nil, err
	}
	if a.cfg.Manifest.Path == "" {
		a.log.Debug().Msg("No manifest configured; nothing will be disabled")
	}
	return disable.NewDecider(disable.Options{
		ManifestPath: a.cfg.Manifest.Path,
		Strict:       a.cfg.Manifest.Strict,
		Platform:     a.cfg.Platform,
		Matcher:      mt,
		Logger:       a.log,
	}), nil
}

func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// Skip config loading so version works with a broken config.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), version.Get())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
