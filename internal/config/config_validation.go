// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The expnse-server Authors

package config

// applyDefaults fills the fields an operator may reasonably omit. The local
// defaults mirror the development setup of the original web client: a
// SQLite file named "expnse.db" next to the binary, listening on :8080.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":8080"
	}

	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverSQLite
	}

	if cfg.Storage.DB.Driver == DriverSQLite && cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "expnse.db"
	}

	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = 10
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return ErrUnknownDBDriver
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.BcryptCost < 4 || cfg.App.BcryptCost > 31 {
		return ErrInvalidAppConfigs
	}

	return nil
}
