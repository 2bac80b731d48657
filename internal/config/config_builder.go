package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.applyDefaults(); err != nil {
		return nil, err
	}

	return config, config.validate()
}

func (b *configBuilder) withFlags(flagCfg *StructuredConfig) *configBuilder {
	if flagCfg == nil {
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withDotEnv loads the dotenv file named by an earlier source or by the
// ENV_FILE variable into the process environment. It must run before
// withEnv.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := b.envFilePath()
	if path == "" {
		return b
	}

	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) envFilePath() string {
	for _, cfg := range b.configs {
		if cfg.EnvFilePath != "" {
			return cfg.EnvFilePath
		}
	}
	return lookupEnvFile()
}
