// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
)

// openFunc opens and initialises the database.
type openFunc func(ctx context.Context) (*DB, error)

// connector opens the database on first use. Concurrent first callers wait
// for the same open; its outcome, success or failure, is kept for every
// later call.
type connector struct {
	open openFunc

	once sync.Once
	db   *DB
	err  error
}

func newConnector(cfg config.DB, log *logger.Logger) *connector {
	return &connector{
		open: func(ctx context.Context) (*DB, error) {
			return NewConnectSQLite(ctx, cfg, log)
		},
	}
}

// newOpenedConnector returns a connector that already holds db.
func newOpenedConnector(db *DB) *connector {
	c := &connector{db: db}
	c.once.Do(func() {})
	return c
}

// get returns the shared handle, opening it on the first call. The open is
// detached from ctx cancellation so that one cancelled caller cannot make
// the failure sticky for everybody else.
func (c *connector) get(ctx context.Context) (*DB, error) {
	c.once.Do(func() {
		db, err := c.open(context.WithoutCancel(ctx))
		if err != nil {
			c.err = fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
			return
		}
		c.db = db
	})

	return c.db, c.err
}

// close closes the handle if it was ever opened. A connector closed before
// first use never opens.
func (c *connector) close() error {
	c.once.Do(func() {
		c.err = fmt.Errorf("%w: storage closed", ErrStorageUnavailable)
	})
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}
