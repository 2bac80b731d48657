package service

import (
	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/crypto"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
)

// Services is everything a front end needs from the journal core.
type Services struct {
	Journal JournalService
	Access  AccessService
	Export  ExportService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		Journal: NewJournalService(storages.EntryRepository, cfg.App, logger),
		Access:  NewAccessService(storages.SecretRepository, crypto.NewPinHasher(cfg.App.PinHashCost), logger),
		Export:  NewExportService(storages.EntryRepository, logger),
	}
}
