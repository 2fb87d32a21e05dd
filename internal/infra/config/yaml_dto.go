package config

// YAMLConfig mirrors fourbar.yaml on disk. All sections are optional;
// anything absent keeps its default.
type YAMLConfig struct {
	Bounds  YAMLBounds   `yaml:"bounds"`
	Presets []YAMLPreset `yaml:"presets"`
}

// YAMLBounds holds per-role slider ranges.
type YAMLBounds struct {
	Frame   *YAMLRange `yaml:"frame"`
	Input   *YAMLRange `yaml:"input"`
	Coupler *YAMLRange `yaml:"coupler"`
	Output  *YAMLRange `yaml:"output"`
}

type YAMLRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// YAMLPreset is a named mechanism configuration.
type YAMLPreset struct {
	Name    string  `yaml:"name"`
	Frame   float64 `yaml:"frame"`
	Input   float64 `yaml:"input"`
	Coupler float64 `yaml:"coupler"`
	Output  float64 `yaml:"output"`
	Angle   float64 `yaml:"angle"`
}
