// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// Supported database drivers.
const (
	DriverMattn   = "sqlite3"
	DriverModernc = "sqlite"
)

const (
	appDirName      = "go-journal"
	defaultDBFile   = "journal.db3"
	defaultLogFile  = "journal.log"
	defaultPageSize = 20
	defaultLogLevel = "info"
)

// applyDefaults fills every field still empty after merging.
func (cfg *StructuredConfig) applyDefaults() error {
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverMattn
	}
	if cfg.App.PinHashCost == 0 {
		cfg.App.PinHashCost = bcrypt.DefaultCost
	}
	if cfg.App.PageSize == 0 {
		cfg.App.PageSize = defaultPageSize
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}

	if cfg.Storage.DB.DSN != "" && cfg.Log.File != "" {
		return nil
	}

	dir, err := DefaultDataDir()
	if err != nil {
		return err
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(dir, defaultDBFile)
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(dir, defaultLogFile)
	}

	return nil
}

// DefaultDataDir returns the per-user directory holding the database and the
// log file.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("error resolving user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application rules before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.Driver {
	case DriverMattn, DriverModernc:
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.App.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PinHashCost < bcrypt.MinCost || cfg.App.PinHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: pin hash cost must be within [%d, %d]",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
