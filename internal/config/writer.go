package config

import (
	"fmt"
	"os"

	yamlv3 "gopkg.in/yaml.v3"
)

// WriteDefault writes the built-in default configuration to path in
// YAML, refusing to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	data, err := yamlv3.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshalling default configuration: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
