package models

import (
	"fmt"
	"strings"
	"time"
)

// ExportFormat names an export encoding.
type ExportFormat string

const (
	ExportJSON ExportFormat = "json"
	ExportYAML ExportFormat = "yaml"
)

// ParseExportFormat accepts "json", "yaml" and "yml", case-insensitively.
func ParseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return ExportJSON, nil
	case "yaml", "yml":
		return ExportYAML, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ExportDocument is the top-level value written by an export.
type ExportDocument struct {
	ExportedAt time.Time      `json:"exported_at" yaml:"exported_at"`
	From       string         `json:"from,omitempty" yaml:"from,omitempty"`
	To         string         `json:"to,omitempty" yaml:"to,omitempty"`
	Count      int            `json:"count" yaml:"count"`
	Entries    []JournalEntry `json:"entries" yaml:"entries"`
}
