package meanshift

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML file and overlays it on DefaultConfig. Keys use the
// snake_case names from the Config yaml tags; unknown keys are rejected.
//
// Example file:
//
//	bandwidth: 2.5
//	radius_cutoff: 7.5
//	max_iterations: 100
//	algorithm: kdtree
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("meanshift: reading config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config bytes the same way LoadConfig does.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("meanshift: parsing config: %w", err)
	}
	return cfg, nil
}
