package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"honnef.co/go/garland"
)

// loadConfig decodes the YAML file at path over the default generator
// configuration. Keys that are missing from the file keep their defaults;
// unknown keys are an error. An empty path returns the defaults.
func loadConfig(path string) (garland.Generator, error) {
	g := garland.DefaultGenerator()
	if path == "" {
		return g, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return g, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return decodeConfig(f)
}

func decodeConfig(r io.Reader) (garland.Generator, error) {
	g := garland.DefaultGenerator()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&g); err != nil && !errors.Is(err, io.EOF) {
		return g, fmt.Errorf("invalid config: %w", err)
	}
	return g, nil
}
