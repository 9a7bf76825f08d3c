package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAML is a kong.ConfigurationLoader for YAML files. Keys are flag names,
// as with kong.JSON.
func YAML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml config: %w", err)
	}
	if values == nil {
		values = map[string]any{}
	}

	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("convert yaml config: %w", err)
	}
	return kong.JSON(bytes.NewReader(data))
}

// configOptions splits paths by extension between the JSON and YAML loaders.
func configOptions(paths []string) []kong.Option {
	var jsonPaths, yamlPaths []string
	for _, p := range paths {
		switch filepath.Ext(p) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, p)
		default:
			jsonPaths = append(jsonPaths, p)
		}
	}
	return []kong.Option{
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(YAML, yamlPaths...),
	}
}
