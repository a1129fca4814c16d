package main

import (
	"time"

	"github.com/ruffel/sshmcp"
	"github.com/ruffel/sshmcp/internal/mcpserver"
	"github.com/ruffel/sshmcp/providers/env"
	"github.com/ruffel/sshmcp/providers/ssh"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		connectTimeout time.Duration
		commandTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio (default)",
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, err := newLogger(opts.logLevel)
			if err != nil {
				return err
			}

			defaults := env.New(env.WithDotenv(opts.envFile), env.WithLogger(logger))

			knownHosts, err := defaults.KnownHostsPath()
			if err != nil {
				return err
			}

			dialerOpts := []ssh.Option{ssh.WithTimeout(connectTimeout), ssh.WithLogger(logger)}
			if knownHosts != "" {
				logger.Info("verifying host keys", "known_hosts", knownHosts)
				dialerOpts = append(dialerOpts, ssh.WithKnownHosts(knownHosts))
			}

			mgr := sshmcp.NewManager(ssh.NewDialer(dialerOpts...), defaults,
				sshmcp.WithLogger(logger),
				sshmcp.WithCommandTimeout(commandTimeout),
			)
			defer func() { _ = mgr.Close() }()

			return mcpserver.New(mgr, mcpserver.WithVersion(version), mcpserver.WithLogger(logger)).ServeStdio()
		},
	}
	cmd.Flags().DurationVar(&connectTimeout, "connect-timeout", ssh.DefaultTimeout, "TCP connect and SSH handshake timeout")
	cmd.Flags().DurationVar(&commandTimeout, "command-timeout", 0, "Per-command timeout (0 waits indefinitely)")

	return cmd
}
