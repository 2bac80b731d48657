package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/logger"
)

// secretRepository is the SQLite implementation of [SecretRepository]
// over the pin table.
type secretRepository struct {
	conn   *connector
	logger *logger.Logger
}

func newSecretRepository(conn *connector, logger *logger.Logger) *secretRepository {
	return &secretRepository{
		conn:   conn,
		logger: logger,
	}
}

func (s *secretRepository) CountSecrets(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	db, err := s.conn.get(ctx)
	if err != nil {
		log.Err(err).Str("func", "secretRepository.CountSecrets").Msg("storage unavailable")
		return 0, err
	}

	var n int
	if err = db.GetContext(ctx, &n, countSecrets); err != nil {
		log.Err(err).Str("func", "secretRepository.CountSecrets").Msg("failed to count secrets")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}

func (s *secretRepository) GetSecretHash(ctx context.Context) (string, bool, error) {
	log := logger.FromContext(ctx)

	db, err := s.conn.get(ctx)
	if err != nil {
		log.Err(err).Str("func", "secretRepository.GetSecretHash").Msg("storage unavailable")
		return "", false, err
	}

	var hash string
	err = db.GetContext(ctx, &hash, getSecretHash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "secretRepository.GetSecretHash").Msg("failed to get secret hash")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return hash, true, nil
}

// ReplaceSecretHash deletes all rows and inserts one in a single
// transaction, so the table never holds more than one secret.
func (s *secretRepository) ReplaceSecretHash(ctx context.Context, hash string) error {
	log := logger.FromContext(ctx)

	db, err := s.conn.get(ctx)
	if err != nil {
		log.Err(err).Str("func", "secretRepository.ReplaceSecretHash").Msg("storage unavailable")
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "secretRepository.ReplaceSecretHash").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllSecrets); err != nil {
		log.Err(err).Str("func", "secretRepository.ReplaceSecretHash").Msg("failed to delete old secrets")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.ExecContext(ctx, insertSecret, hash); err != nil {
		log.Err(err).Str("func", "secretRepository.ReplaceSecretHash").Msg("failed to insert secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "secretRepository.ReplaceSecretHash").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().Str("func", "secretRepository.ReplaceSecretHash").Msg("secret replaced")
	return nil
}
