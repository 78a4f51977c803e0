// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fbeta-parity",
		Short: "Check F-beta metrics against the reference scorer",
		Long: `fbeta-parity runs the stateful and functional F-beta metrics over seeded
fixtures for every input family and compares each value with the reference
scorer within an absolute tolerance.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if *debugLogging {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	}

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newFamiliesCommand())

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}
