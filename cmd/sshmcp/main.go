// Package main runs the SSH MCP server and its maintenance commands.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

type rootOptions struct {
	logLevel string
	envFile  string
}

func main() {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "sshmcp",
		Short:         "SSH remote administration as MCP tools",
		Long:          `Serves connect, command, file transfer and system inspection tools for a single SSH session over the Model Context Protocol (stdio).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error); logs go to stderr")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Path of the .env file holding UBUNTU_SSH_* defaults")

	serveCmd := newServeCmd(opts)
	rootCmd.AddCommand(serveCmd, newValidateCmd(opts), newToolsCmd())
	rootCmd.RunE = serveCmd.RunE
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("❌ "+err.Error()))
		os.Exit(1)
	}
}

// newLogger writes text logs to stderr; stdout carries the MCP protocol.
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
