package ssh

import (
	"github.com/ruffel/sshmcp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// clientConfig converts a resolved connection config into an ssh.ClientConfig.
//
// Key material is parsed before any network I/O. When a key parses, the password is
// not offered; otherwise password authentication is used.
func (d *Dialer) clientConfig(cfg sshmcp.ConnectionConfig) (*ssh.ClientConfig, error) {
	hostKeyCallback, err := d.hostKeys()
	if err != nil {
		return nil, err
	}

	config := &ssh.ClientConfig{
		User:            cfg.Username,
		HostKeyCallback: hostKeyCallback,
		Timeout:         d.timeout,
	}

	if cfg.PrivateKey != "" {
		signer, format, err := ParseKey(d.keyParsers, cfg.PrivateKey, cfg.PrivateKeyPassphrase)
		if err != nil {
			d.logger.Error("private key rejected", "user", cfg.Username, "host", cfg.Host)

			return nil, err
		}

		d.logger.Info("using private key authentication", "format", format.String())
		config.Auth = []ssh.AuthMethod{ssh.PublicKeys(signer)}

		return config, nil
	}

	d.logger.Info("using password authentication")
	config.Auth = []ssh.AuthMethod{ssh.Password(cfg.Password)}

	return config, nil
}

// hostKeys returns the host key callback for the next handshake.
func (d *Dialer) hostKeys() (ssh.HostKeyCallback, error) {
	switch {
	case d.hostKeyCallback != nil:
		return d.hostKeyCallback, nil
	case d.knownHostsPath != "":
		cb, err := knownhosts.New(d.knownHostsPath)
		if err != nil {
			return nil, &sshmcp.ConfigError{Field: "known_hosts", Reason: err.Error()}
		}

		return cb, nil
	default:
		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec // unknown hosts are accepted unless known_hosts is configured
	}
}
