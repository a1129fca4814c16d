// Package mcpserver exposes an sshmcp session as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"io"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/ruffel/sshmcp"
)

// Name is the MCP server name advertised during initialization.
const Name = "ssh-mcp-server"

// Session is the subset of *sshmcp.Manager the tools drive.
type Session interface {
	Connect(ctx context.Context, explicit sshmcp.ConnectionConfig) (string, error)
	Execute(ctx context.Context, command, cwd string) (sshmcp.CommandResult, error)
	Upload(ctx context.Context, localPath, remotePath string) (string, error)
	Download(ctx context.Context, remotePath, localPath string) (string, error)
	Disconnect(ctx context.Context) (string, error)
	CollectSystemInfo(ctx context.Context) (string, error)
	Status() sshmcp.Status
}

var _ Session = (*sshmcp.Manager)(nil)

// Server registers the SSH tools on an MCP server.
type Server struct {
	session Session
	version string
	logger  *slog.Logger
	mcp     *server.MCPServer
}

// Option defines a functional option for the Server.
type Option func(*Server)

// WithVersion sets the version advertised during initialization.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Server with every tool registered.
func New(session Session, opts ...Option) *Server {
	s := &Server{
		session: session,
		version: "dev",
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, o := range opts {
		o(s)
	}

	s.mcp = server.NewMCPServer(Name, s.version, server.WithToolCapabilities(false))
	s.mcp.AddTools(s.Tools()...)

	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves MCP over stdin/stdout until stdin closes or the process is
// signalled.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio", "name", Name, "version", s.version)

	return server.ServeStdio(s.mcp)
}
