// Package ssh implements the sshmcp.Dialer, sshmcp.Transport and sshmcp.FileChannel
// interfaces on top of "golang.org/x/crypto/ssh" and "github.com/pkg/sftp".
//
// It provides:
//   - Password or private key authentication, trying key formats in a fixed order
//     (RSA, Ed25519, ECDSA, DSS) and decrypting encrypted keys with a passphrase
//   - Optional host key verification against an OpenSSH known_hosts file
//   - Blocking command execution with context cancellation
//   - An SFTP file channel sharing the same connection
//
// Usage:
//
//	dialer := ssh.NewDialer(ssh.WithTimeout(10 * time.Second))
//	mgr := sshmcp.NewManager(dialer, defaults)
package ssh
