package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"office-addin-dev-settings/internal/config"
	"office-addin-dev-settings/internal/logging"
	"office-addin-dev-settings/internal/manifest"
	"office-addin-dev-settings/pkg/devsettings"
	"office-addin-dev-settings/pkg/store"
)

// app holds the state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool
	debug      bool

	cfg     *config.Config
	log     logging.Logger
	client  *devsettings.Client
	logFile io.Closer

	out io.Writer
	// newStore and platform are swapped in tests.
	newStore func() store.SettingsStore
	platform string
}

func newApp() *app {
	return &app{
		out:      os.Stdout,
		newStore: func() store.SettingsStore { return store.NewRegistryStore() },
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "office-addin-dev-settings",
		Short: "Configure developer settings for an Office add-in",
		Long: `Configures the per-user developer settings Office reads for an add-in:
debugging, live reload, and the url the source bundle is loaded from.

The add-in is identified by the id in its manifest. Commands that take an
optional manifest path fall back to manifest.default_path from the config
file (manifest.xml unless configured).

Examples:
  # Attach the debugger directly
  office-addin-dev-settings enable-debugging manifest.xml --debug-method direct

  # Load the bundle from another machine, keeping the stored port
  office-addin-dev-settings source-bundle-url manifest.xml --host devbox

  # Reset the host to localhost
  office-addin-dev-settings source-bundle-url manifest.xml --host ""`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipsSetup(cmd) {
				return nil
			}
			if err := a.setup(cmd); err != nil {
				return err
			}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				a.log.Debugf("flag --%s=%q", f.Name, f.Value.String())
			})
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logFile != nil {
				_ = a.logFile.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to the config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolVar(&a.debug, "debug-log", false, "enable debug output")

	root.AddCommand(
		a.clearCmd(),
		a.disableDebuggingCmd(),
		a.disableLiveReloadCmd(),
		a.enableDebuggingCmd(),
		a.enableLiveReloadCmd(),
		a.sourceBundleURLCmd(),
		a.showCmd(),
	)
	return root
}

// skipsSetup reports commands that never touch settings: help and the
// shell completion generators.
func skipsSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd, "completion":
			return true
		}
	}
	return false
}

func (a *app) setup(cmd *cobra.Command) error {
	gate := devsettings.CurrentGate()
	if a.platform != "" {
		gate.Platform = a.platform
	}
	if err := gate.Check(); err != nil {
		return err
	}

	// Keep stdout clean for machine-readable output.
	if f := cmd.Flags().Lookup("json"); f != nil && f.Value.String() == "true" {
		a.log.Out = a.log.Err
		if a.log.Out == nil {
			a.log.Out = os.Stderr
		}
	}

	path := a.configPath
	if path == "" {
		path = os.Getenv("ADDIN_DEV_SETTINGS_CONFIG")
	}
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Logging.NoColor {
		color.NoColor = true
	}
	a.log.Verbose = a.verbose || cfg.Logging.Verbose
	a.log.Debug = a.debug || cfg.Logging.Debug
	if cfg.Logging.File != "" {
		f, err := logging.OpenFile(cfg.Logging.File)
		if err != nil {
			a.log.Warnf("log file not opened: %v", err)
		} else {
			a.log.File = f
			a.logFile = f
		}
	}
	a.log.Debugf("config loaded from %s (developer key %s)", path, cfg.Registry.DeveloperKey)

	opts := []devsettings.Option{
		devsettings.WithDeveloperKey(cfg.Registry.DeveloperKey),
		devsettings.WithLogger(a.log),
	}
	if a.platform != "" {
		opts = append(opts, devsettings.WithPlatform(a.platform))
	}
	a.client = devsettings.NewClient(a.newStore(), opts...)
	return nil
}

// addinID resolves the add-in id from the manifest argument, or from the
// configured default manifest when the argument is absent.
func (a *app) addinID(args []string) (string, error) {
	path := a.cfg.Manifest.DefaultPath
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}
	id, err := manifest.AddinID(path)
	if err != nil {
		return "", err
	}
	a.log.Infof("add-in %s (from %s)", id, path)
	return id, nil
}
