package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path and merges it over the built-in profiles.
// An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: "config.load", Path: path, Err: err}
	}

	return Parse(path, b)
}

// Parse decodes YAML bytes. path is only used in error messages.
func Parse(path string, b []byte) (*Config, error) {
	var dto YAMLConfig
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return nil, &Error{Op: "config.parse", Path: path, Err: err}
	}

	return MapConfig(path, dto)
}
