package ssh

import (
	"crypto/dsa" //nolint:staticcheck // ssh-dss keys are still accepted
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/ruffel/sshmcp"
	"golang.org/x/crypto/ssh"
)

// UnsupportedKeyReason is the AuthError reason reported when no parser accepts the
// key material.
const UnsupportedKeyReason = "unsupported key format or incorrect passphrase"

var errWrongKeyType = errors.New("key is of a different type")

// KeyParser turns private key text into a signer for exactly one key format.
type KeyParser struct {
	Format sshmcp.KeyFormat
	Parse  func(key []byte, passphrase string) (ssh.Signer, error)
}

// DefaultKeyParsers returns one parser per sshmcp.KeyFormats entry, in that order.
func DefaultKeyParsers() []KeyParser {
	parsers := make([]KeyParser, 0, len(sshmcp.KeyFormats))

	for _, format := range sshmcp.KeyFormats {
		parsers = append(parsers, KeyParser{Format: format, Parse: typedParser(format)})
	}

	return parsers
}

// ParseKey tries each parser in order and returns the first signer produced.
// Later parsers are not consulted once one succeeds.
func ParseKey(parsers []KeyParser, key, passphrase string) (ssh.Signer, sshmcp.KeyFormat, error) {
	for _, p := range parsers {
		signer, err := p.Parse([]byte(key), passphrase)
		if err == nil {
			return signer, p.Format, nil
		}
	}

	return nil, 0, &sshmcp.AuthError{Reason: UnsupportedKeyReason}
}

func typedParser(format sshmcp.KeyFormat) func([]byte, string) (ssh.Signer, error) {
	return func(key []byte, passphrase string) (ssh.Signer, error) {
		raw, err := parseRaw(key, passphrase)
		if err != nil {
			return nil, err
		}

		typed, ok := asFormat(raw, format)
		if !ok {
			return nil, fmt.Errorf("%w: want %s, got %T", errWrongKeyType, format, raw)
		}

		return ssh.NewSignerFromKey(typed)
	}
}

// parseRaw decodes PEM or OpenSSH key text, decrypting it when a passphrase is
// supplied and the key requires one.
func parseRaw(key []byte, passphrase string) (any, error) {
	raw, err := ssh.ParseRawPrivateKey(key)

	var missing *ssh.PassphraseMissingError
	if errors.As(err, &missing) && passphrase != "" {
		return ssh.ParseRawPrivateKeyWithPassphrase(key, []byte(passphrase))
	}

	return raw, err
}

func asFormat(raw any, format sshmcp.KeyFormat) (any, bool) {
	switch format {
	case sshmcp.KeyRSA:
		k, ok := raw.(*rsa.PrivateKey)

		return k, ok
	case sshmcp.KeyEd25519:
		switch k := raw.(type) {
		case ed25519.PrivateKey:
			return k, true
		case *ed25519.PrivateKey:
			return *k, true
		}
	case sshmcp.KeyECDSA:
		k, ok := raw.(*ecdsa.PrivateKey)

		return k, ok
	case sshmcp.KeyDSS:
		k, ok := raw.(*dsa.PrivateKey)

		return k, ok
	}

	return nil, false
}
