package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mechkit/fourbar/internal/domain"
)

// Load reads fourbar.yaml from path and maps it over the defaults.
// A missing file is reported with KindNotFound so callers can fall back
// to Default without special-casing.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Config{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return Map(path, dto)
}
