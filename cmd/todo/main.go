package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"todoboard/internal/config"
	"todoboard/internal/logging"
	"todoboard/internal/ui"
)

// runBoard is swapped in tests so the root command does not start a TUI.
var runBoard = ui.Run

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "todo",
		Short:         "A single-screen todo board for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(resolvePath(configPath))
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger, closeLog, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}
			defer closeLog()
			return runBoard(cfg, logger)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config TOML (default $"+config.ConfigEnvVar+" or the user config dir)")
	root.AddCommand(newConfigCmd(&configPath))
	return root
}

func newConfigCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or initialise the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration path in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), resolvePath(*configPath))
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default configuration if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolvePath(*configPath)
			_, created, err := config.LoadOrCreate(path)
			if err != nil {
				return fmt.Errorf("init config: %w", err)
			}
			if created {
				log.Info("wrote default config", "path", path)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	})
	return cmd
}

func resolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return config.ResolveConfigPath()
}
