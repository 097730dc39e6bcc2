// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lpath

package lpath

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LoadRulesFile reads and parses rules from a host file.
func LoadRulesFile(path string) ([]Rule, error) {
	return LoadRulesFileFS(afero.NewOsFs(), path)
}

// LoadRulesFileFS reads and parses rules from a file in fs.
func LoadRulesFileFS(fs afero.Fs, path string) ([]Rule, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer func() { _ = f.Close() }()

	rules, err := ParseRules(f)
	if err != nil {
		return nil, fmt.Errorf("parse rules file %s: %w", path, err)
	}

	return rules, nil
}

// LoadRulesFiles reads and merges rules from host files in the given order.
func LoadRulesFiles(paths ...string) ([]Rule, error) {
	sets := make([][]Rule, 0, len(paths))
	for _, path := range paths {
		rules, err := LoadRulesFile(path)
		if err != nil {
			return nil, err
		}

		sets = append(sets, rules)
	}

	return MergeRules(sets...), nil
}

// LoadConfigFile reads a YAML (.yaml, .yml) or TOML (.toml) config from a host file.
func LoadConfigFile(path string) (Config, error) {
	return LoadConfigFileFS(afero.NewOsFs(), path)
}

// LoadConfigFileFS reads a YAML or TOML config from a file in fs.
//
// Unknown keys are rejected.
func LoadConfigFileFS(fs afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &cfg)
	case ".toml":
		err = decodeTOML(data, &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedConfig, path)
	}

	if err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// decodeYAML strictly decodes YAML data; an empty document is a zero config.
func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// decodeTOML strictly decodes TOML data.
func decodeTOML(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}
