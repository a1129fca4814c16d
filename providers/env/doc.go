// Package env implements sshmcp.DefaultsProvider from process environment variables,
// an optional .env file and an optional OpenSSH client config.
//
// Every call to Defaults re-reads all three sources, so edits take effect on the
// next connect without restarting the process. Process environment variables win
// over values in the .env file.
//
// Recognized variables:
//
//	UBUNTU_SSH_HOST                    default host, or an alias in UBUNTU_SSH_CONFIG
//	UBUNTU_SSH_PORT                    default port
//	UBUNTU_SSH_USERNAME                default user
//	UBUNTU_SSH_PASSWORD                default password
//	UBUNTU_SSH_PRIVATE_KEY_PATH        path to a private key file, read on every query
//	UBUNTU_SSH_PRIVATE_KEY_PASSPHRASE  passphrase for an encrypted key
//	UBUNTU_SSH_CONFIG                  path to an OpenSSH client config
//	UBUNTU_SSH_KNOWN_HOSTS             path to a known_hosts file for host key checking
package env
