package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/crypto"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/validators"
	"github.com/MKhiriev/go-journal/models"
)

type accessService struct {
	secrets   store.SecretRepository
	hasher    crypto.PinHasher
	validator validators.Validator

	logger *logger.Logger
}

func NewAccessService(secrets store.SecretRepository, hasher crypto.PinHasher, logger *logger.Logger) AccessService {
	return &accessService{
		secrets:   secrets,
		hasher:    hasher,
		validator: validators.NewJournalValidator(),
		logger:    logger,
	}
}

// HasPin is true only when exactly one secret row exists.
func (a *accessService) HasPin(ctx context.Context) (bool, error) {
	n, err := a.secrets.CountSecrets(ctx)
	if err != nil {
		return false, fmt.Errorf("error checking pin: %w", err)
	}
	return n == 1, nil
}

func (a *accessService) SetPin(ctx context.Context, pin models.Pin) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, pin); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hashed, err := a.hasher.Hash(string(pin))
	if err != nil {
		log.Err(err).Str("func", "accessService.SetPin").Msg("failed to hash pin")
		return fmt.Errorf("error hashing pin: %w", err)
	}

	if err = a.secrets.ReplaceSecretHash(ctx, hashed); err != nil {
		return fmt.Errorf("error storing pin: %w", err)
	}

	log.Info().Str("func", "accessService.SetPin").Msg("pin set")
	return nil
}

// VerifyPin fails closed: a stored hash that cannot be parsed yields false
// and is only logged.
func (a *accessService) VerifyPin(ctx context.Context, pin models.Pin) (bool, error) {
	log := logger.FromContext(ctx)

	hashed, found, err := a.secrets.GetSecretHash(ctx)
	if err != nil {
		return false, fmt.Errorf("error reading pin: %w", err)
	}
	if !found {
		return false, nil
	}

	ok, err := a.hasher.Verify(hashed, string(pin))
	if err != nil {
		log.Warn().Err(err).Str("func", "accessService.VerifyPin").Msg("stored pin hash is unusable")
		return false, nil
	}

	if !ok {
		log.Info().Str("func", "accessService.VerifyPin").Msg("pin rejected")
	}
	return ok, nil
}
