package config

import yamlv2 "gopkg.in/yaml.v2"

// yamlV2Unmarshal decodes into cfg using the yaml.v2 decoder. Kept as its
// own indirection point so LoadLegacy's dependency on the older yaml
// major version is visible and swappable without touching callers.
func yamlV2Unmarshal(data []byte, cfg *Config) error {
	return yamlv2.Unmarshal(data, cfg)
}
