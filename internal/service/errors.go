package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrEntryNotSaved           = errors.New("entry was not saved")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
