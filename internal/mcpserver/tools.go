package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/ruffel/sshmcp"
)

// Tool names.
const (
	ToolConnect    = "connect_ssh"
	ToolExecute    = "execute_command"
	ToolUpload     = "upload_file"
	ToolDownload   = "download_file"
	ToolDisconnect = "disconnect_ssh"
	ToolSystemInfo = "get_system_info"
	ToolStatus     = "get_connection_status"
)

// Tools returns every tool definition paired with its handler, in registration order.
//
//nolint:funlen // Tool table.
func (s *Server) Tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool(ToolConnect,
				mcp.WithDescription("Connect to the Ubuntu VM over SSH. Parameters that are not provided fall back to the UBUNTU_SSH_* environment variables."),
				mcp.WithString("host", mcp.Description("SSH host address (e.g. 192.168.1.100). Defaults to UBUNTU_SSH_HOST.")),
				mcp.WithNumber("port", mcp.Description("SSH port (default 22). Defaults to UBUNTU_SSH_PORT.")),
				mcp.WithString("username", mcp.Description("SSH user name. Defaults to UBUNTU_SSH_USERNAME.")),
				mcp.WithString("password", mcp.Description("SSH password (optional when using a private key). Defaults to UBUNTU_SSH_PASSWORD.")),
				mcp.WithString("private_key", mcp.Description("Private key content (optional). Defaults to the file at UBUNTU_SSH_PRIVATE_KEY_PATH.")),
				mcp.WithString("private_key_passphrase", mcp.Description("Private key passphrase (optional). Defaults to UBUNTU_SSH_PRIVATE_KEY_PASSPHRASE.")),
			),
			Handler: s.handleConnect,
		},
		{
			Tool: mcp.NewTool(ToolExecute,
				mcp.WithDescription("Run a shell command on the connected Ubuntu VM."),
				mcp.WithString("command", mcp.Required(), mcp.Description("Command to run on the Ubuntu VM")),
				mcp.WithString("cwd", mcp.Description("Working directory to run the command in (optional). Inserted unquoted.")),
			),
			Handler: s.handleExecute,
		},
		{
			Tool: mcp.NewTool(ToolUpload,
				mcp.WithDescription("Upload a file to the Ubuntu VM."),
				mcp.WithString("local_path", mcp.Required(), mcp.Description("Path of the local file")),
				mcp.WithString("remote_path", mcp.Required(), mcp.Description("Destination path on the Ubuntu VM")),
			),
			Handler: s.handleUpload,
		},
		{
			Tool: mcp.NewTool(ToolDownload,
				mcp.WithDescription("Download a file from the Ubuntu VM."),
				mcp.WithString("remote_path", mcp.Required(), mcp.Description("Path of the file on the Ubuntu VM")),
				mcp.WithString("local_path", mcp.Required(), mcp.Description("Destination path of the local file")),
			),
			Handler: s.handleDownload,
		},
		{
			Tool:    mcp.NewTool(ToolDisconnect, mcp.WithDescription("Disconnect the SSH session from the Ubuntu VM.")),
			Handler: s.handleDisconnect,
		},
		{
			Tool: mcp.NewTool(ToolSystemInfo,
				mcp.WithDescription("Collect system information from the Ubuntu VM: "+
					"system identification (uname -a), OS release (lsb_release -a), disk usage (df -h), "+
					"memory usage (free -h) and the first processes (ps aux | head -10)."),
			),
			Handler: s.handleSystemInfo,
		},
		{
			Tool:    mcp.NewTool(ToolStatus, mcp.WithDescription("Report whether an SSH session is open and to which host.")),
			Handler: s.handleStatus,
		},
	}
}

func (s *Server) handleConnect(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	explicit := sshmcp.ConnectionConfig{
		Host:                 req.GetString("host", ""),
		Port:                 req.GetInt("port", 0),
		Username:             req.GetString("username", ""),
		Password:             req.GetString("password", ""),
		PrivateKey:           req.GetString("private_key", ""),
		PrivateKeyPassphrase: req.GetString("private_key_passphrase", ""),
	}

	msg, err := s.session.Connect(ctx, explicit)
	if err != nil {
		return s.fail(ToolConnect, "SSH connection failed", err), nil
	}

	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleExecute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	command, err := req.RequireString("command")
	if err != nil {
		return s.fail(ToolExecute, "Command execution failed", err), nil
	}

	res, err := s.session.Execute(ctx, command, req.GetString("cwd", ""))
	if err != nil {
		return s.fail(ToolExecute, "Command execution failed", err), nil
	}

	return mcp.NewToolResultText(res.Format()), nil
}

func (s *Server) handleUpload(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	local, remote, err := requirePair(req, "local_path", "remote_path")
	if err != nil {
		return s.fail(ToolUpload, "File upload failed", err), nil
	}

	msg, err := s.session.Upload(ctx, local, remote)
	if err != nil {
		return s.fail(ToolUpload, "File upload failed", err), nil
	}

	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleDownload(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	remote, local, err := requirePair(req, "remote_path", "local_path")
	if err != nil {
		return s.fail(ToolDownload, "File download failed", err), nil
	}

	msg, err := s.session.Download(ctx, remote, local)
	if err != nil {
		return s.fail(ToolDownload, "File download failed", err), nil
	}

	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleDisconnect(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	msg, err := s.session.Disconnect(ctx)
	if err != nil {
		return s.fail(ToolDisconnect, "Disconnect failed", err), nil
	}

	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleSystemInfo(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.session.CollectSystemInfo(ctx)
	if err != nil {
		return s.fail(ToolSystemInfo, "System info failed", err), nil
	}

	return mcp.NewToolResultText(info), nil
}

func (s *Server) handleStatus(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.session.Status().String()), nil
}

// fail renders err as a tool error result carrying the operation prefix.
func (s *Server) fail(tool, prefix string, err error) *mcp.CallToolResult {
	s.logger.Error("tool call failed", "tool", tool, "error", err)

	return mcp.NewToolResultError(prefix + ": " + err.Error())
}

func requirePair(req mcp.CallToolRequest, first, second string) (string, string, error) {
	a, err := req.RequireString(first)
	if err != nil {
		return "", "", err
	}

	b, err := req.RequireString(second)
	if err != nil {
		return "", "", err
	}

	return a, b, nil
}
