// Package config loads the optional YAML configuration file and exposes it
// to the command line parser as a kong resolver.
package config

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// DefaultPath is loaded when present, before any --config file.
const DefaultPath = ".microunit.yaml"

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (map[string]any, error) {
	values := make(map[string]any)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := validate(values); err != nil {
		return nil, err
	}

	return values, nil
}

// Loader is a kong.ConfigurationLoader for YAML files whose keys are flag
// names.
func Loader(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	values, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return kong.ResolverFunc(func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		return lookup(values, flag.Name), nil
	}), nil
}

func lookup(values map[string]any, name string) any {
	v, ok := values[name]
	if !ok {
		return nil
	}

	// kong maps string values for every flag type.
	return fmt.Sprint(v)
}
