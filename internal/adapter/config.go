package adapter

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/codeclear/unveil/internal/model"
)

// LoadConfig reads a TOML pipeline configuration. An empty path returns the
// defaults; keys absent from the file keep their default values.
func LoadConfig(path string) (model.Config, error) {
	cfg := model.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return model.Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}
