// Package cli wires the dhumal commands.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hrutik5321/dhumal/internal/config"
	"github.com/hrutik5321/dhumal/internal/logging"
)

type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	logFile    string

	cfg    *config.Config
	log    zerolog.Logger
	closer io.Closer
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	g := &globalOptions{log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "dhumal",
		Short: "Render data as fixed-width text tables",
		Long: `dhumal lays out CSV files, table snapshots and query results as bordered
fixed-width text tables, and browses databases interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if g.closer != nil {
				return g.closer.Close()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "config file (default $HOME/.dhumal.yaml)")
	flags.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&g.logFormat, "log-format", "", "log format: console or json")
	flags.StringVar(&g.logFile, "log-file", "", "also write logs to this file, rotated")

	root.AddCommand(
		newRenderCommand(g),
		newQueryCommand(g),
		newBrowseCommand(g),
	)
	return root
}

// setup maps environment variables onto flags, loads the config file and builds
// the logger. Command-specific variables win over the global ones.
func (g *globalOptions) setup(cmd *cobra.Command) error {
	if cmd != cmd.Root() {
		if err := checkEnvironmentVariables(commandPrefix(cmd.Name()), cmd.Flags()); err != nil {
			return err
		}
	}
	if err := checkEnvironmentVariables(envPrefix, cmd.Root().PersistentFlags()); err != nil {
		return err
	}

	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	logCfg := cfg.Log
	if g.logLevel != "" {
		logCfg.Level = g.logLevel
	}
	if g.logFormat != "" {
		logCfg.Format = g.logFormat
	}
	if g.logFile != "" {
		logCfg.File = g.logFile
	}
	g.log, g.closer = logging.New(logCfg, cmd.ErrOrStderr())
	g.log.Debug().Str("command", cmd.Name()).Str("config", g.configPath).Msg("configuration loaded")
	return nil
}

// Execute runs the root command, printing any error to stderr.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
