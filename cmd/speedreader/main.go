package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/speedreader/internal/cli"
	"codeberg.org/snonux/speedreader/internal/processor"
	"codeberg.org/snonux/speedreader/internal/terminal"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	logger := cli.SetupLogging(flags.Debug)

	settings, err := cli.LoadSettings()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	proc := processor.NewProcessor(flags, settings, logger)

	// Handle --list-models flag
	if flags.ListModels {
		return proc.ListModels(ctx)
	}

	doc, path, err := proc.LoadDocument(ctx, args)
	if err != nil {
		return err
	}

	if !flags.NoGUI {
		// The window handles its own shutdown
		stop()
		return proc.RunGUIMode(context.Background(), doc, path)
	}

	err = proc.RunTerminal(ctx, doc, path, cmd.OutOrStdout())
	if errors.Is(err, terminal.ErrNoSession) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Interrupted before reading started")
		return nil
	}
	return err
}
