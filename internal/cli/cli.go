package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/boxlayout/internal/config"
	"github.com/grindlemire/boxlayout/internal/debug"
)

const appName = "boxlayout"

// LogInfo is the default level main.go starts the CLI logger at.
const LogInfo = log.InfoLevel

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg      config.Config
	termSize func() (width, height int, ok bool)

	configPath string
	logFile    string
	verbose    bool
}

// New creates a CLI whose logger writes to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		cfg:      config.Default(),
		termSize: terminalSize,
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "boxlayout computes cell-grid layouts for terminal UI designs",
		Long: `boxlayout lays out terminal UI designs described as node trees in TOML,
YAML or JSON documents and reports every node's rectangle together with
overflow, negative-space and constraint warnings.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(versionTemplate())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/boxlayout/config.toml)")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "append debug output to this file (default: $"+debug.EnvVar+")")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.computeCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.kindsCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// setup loads the configuration, applies the log level and opens the
// debug log before any command runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.Logger.SetLevel(level)

	switch {
	case c.logFile != "":
		err = debug.Init(c.logFile)
	case cfg.Log.File != "":
		err = debug.Init(cfg.Log.File)
	default:
		_, err = debug.InitFromEnv()
	}
	if err != nil {
		return err
	}
	debug.Log("%s %s: config %q, level %s", appName, cmd.Name(), c.configPath, level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// engineLogger is the logger handed to layout computations: the debug
// file when one is open, otherwise the command logger.
func (c *CLI) engineLogger() *log.Logger {
	if debug.Enabled() {
		return debug.Logger()
	}
	return c.Logger
}
