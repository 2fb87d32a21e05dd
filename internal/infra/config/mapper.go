package config

import (
	"fmt"
	"strings"

	"github.com/mechkit/fourbar/internal/domain"
)

// Map overlays a parsed YAMLConfig on top of the defaults and validates
// the result. Partial files are fine: only the sections present override.
func Map(path string, yc YAMLConfig) (Config, error) {
	cfg := Default()

	ranges := []struct {
		field string
		src   *YAMLRange
		dst   *Range
	}{
		{"bounds.frame", yc.Bounds.Frame, &cfg.Bounds.Frame},
		{"bounds.input", yc.Bounds.Input, &cfg.Bounds.Input},
		{"bounds.coupler", yc.Bounds.Coupler, &cfg.Bounds.Coupler},
		{"bounds.output", yc.Bounds.Output, &cfg.Bounds.Output},
	}
	for _, r := range ranges {
		if r.src == nil {
			continue
		}
		if r.src.Min <= 0 {
			return Config{}, invalidField(path, r.field+".min", "must be positive")
		}
		if r.src.Max <= r.src.Min {
			return Config{}, invalidField(path, r.field+".max", "must exceed min")
		}
		*r.dst = Range{Min: r.src.Min, Max: r.src.Max}
	}

	if len(yc.Presets) > 0 {
		presets := make([]Preset, 0, len(yc.Presets))
		for i, p := range yc.Presets {
			fieldPrefix := fmt.Sprintf("presets[%d]", i)
			if strings.TrimSpace(p.Name) == "" {
				return Config{}, invalidField(path, fieldPrefix+".name", "preset name is required")
			}

			links := domain.LinkSet{
				Frame:   p.Frame,
				Input:   p.Input,
				Coupler: p.Coupler,
				Output:  p.Output,
			}
			if err := links.Validate(); err != nil {
				return Config{}, invalidField(path, fieldPrefix, err.Error())
			}

			presets = append(presets, Preset{
				Name:     p.Name,
				Links:    links,
				AngleDeg: p.Angle,
			})
		}
		cfg.Presets = presets
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
