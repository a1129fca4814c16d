package sshmcp

// Resolve merges explicit connection parameters over defaults.
//
// For every field a non-empty (non-zero) explicit value wins; otherwise the default
// is used. The merged config must carry a host, a username and at least one of
// password or private key, and its port must lie in 1-65535.
func Resolve(explicit, defaults ConnectionConfig) (ConnectionConfig, error) {
	cfg := ConnectionConfig{
		Host:                 pick(explicit.Host, defaults.Host),
		Port:                 explicit.Port,
		Username:             pick(explicit.Username, defaults.Username),
		Password:             pick(explicit.Password, defaults.Password),
		PrivateKey:           pick(explicit.PrivateKey, defaults.PrivateKey),
		PrivateKeyPassphrase: pick(explicit.PrivateKeyPassphrase, defaults.PrivateKeyPassphrase),
	}

	if cfg.Port == 0 {
		cfg.Port = defaults.Port
	}

	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	if err := cfg.Validate(); err != nil {
		return ConnectionConfig{}, err
	}

	return cfg, nil
}

// Validate checks the invariants a config must hold before authentication.
func (c ConnectionConfig) Validate() error {
	if c.Host == "" {
		return &ConfigError{Field: "host", Reason: "host is required; provide it as a parameter or set UBUNTU_SSH_HOST"}
	}

	if c.Username == "" {
		return &ConfigError{Field: "username", Reason: "username is required; provide it as a parameter or set UBUNTU_SSH_USERNAME"}
	}

	if c.Password == "" && c.PrivateKey == "" {
		return &ConfigError{Reason: "either password or private key is required; set UBUNTU_SSH_PASSWORD or UBUNTU_SSH_PRIVATE_KEY_PATH"}
	}

	if c.Port < 1 || c.Port > 65535 {
		return &ConfigError{Field: "port", Reason: "must be between 1 and 65535"}
	}

	return nil
}

func pick(explicit, fallback string) string {
	if explicit != "" {
		return explicit
	}

	return fallback
}
