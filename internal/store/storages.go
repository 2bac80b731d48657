package store

import (
	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
)

// Storages groups the repositories of one database file. The file is opened
// lazily by the first repository call.
type Storages struct {
	// EntryRepository stores journal entries.
	EntryRepository EntryRepository
	// SecretRepository stores the PIN hash.
	SecretRepository SecretRepository

	conn *connector
}

// NewStorages wires the repositories to the database described by cfg.
// Nothing is opened yet; open errors surface from the first repository call
// as [ErrStorageUnavailable].
func NewStorages(cfg config.Storage, logger *logger.Logger) *Storages {
	logger.Debug().Str("func", "NewStorages").Msg("creating new storages...")
	return newStorages(newConnector(cfg.DB, logger), logger)
}

func newStorages(conn *connector, logger *logger.Logger) *Storages {
	return &Storages{
		EntryRepository:  newEntryRepository(conn, logger),
		SecretRepository: newSecretRepository(conn, logger),
		conn:             conn,
	}
}

// Close releases the database handle. After Close every repository call
// fails with [ErrStorageUnavailable] if the database was never opened, or
// with a driver error otherwise.
func (s *Storages) Close() error {
	return s.conn.close()
}
