package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// parseJSON reads a JSON configuration file. Keys mirror the json tags of
// [StructuredConfig]; unknown keys are rejected so that typos surface.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var cfg StructuredConfig
	decoder := json.NewDecoder(jsonFile)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &cfg, nil
}
