// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Jobify Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive sentinel error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" || cfg.Auth.TokenDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	switch cfg.Notifier.Transport {
	case "", "http", "smtp":
	default:
		return ErrInvalidNotifierConfigs
	}
	if cfg.Notifier.Transport == "http" && cfg.Notifier.RelayURL == "" {
		return ErrInvalidNotifierConfigs
	}
	if cfg.Notifier.Transport == "smtp" && (cfg.Notifier.SMTPAddress == "" || cfg.Notifier.SMTPFrom == "") {
		return ErrInvalidNotifierConfigs
	}

	return nil
}
