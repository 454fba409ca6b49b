package editor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config carries the editing defaults: grid pitches, hit tolerance, and the
// geometry of newly created traces, vias and zones. All lengths are in mm.
type Config struct {
	PlacementGrid     float64 `yaml:"placement_grid"`
	RoutingGrid       float64 `yaml:"routing_grid"`
	HitTolerance      float64 `yaml:"hit_tolerance"`
	TraceWidth        float64 `yaml:"trace_width"`
	ViaSize           float64 `yaml:"via_size"`
	ViaDrill          float64 `yaml:"via_drill"`
	ZoneThermalGap    float64 `yaml:"zone_thermal_gap"`
	ZoneThermalBridge float64 `yaml:"zone_thermal_bridge"`
	ZoneClearance     float64 `yaml:"zone_clearance"`
	ZoneMinThickness  float64 `yaml:"zone_min_thickness"`
	OutlineWidth      float64 `yaml:"outline_width"`
	HistoryLimit      int     `yaml:"history_limit"`
}

// DefaultConfig returns the stock editing defaults.
func DefaultConfig() Config {
	return Config{
		PlacementGrid:     0.5,
		RoutingGrid:       0.1,
		HitTolerance:      0.25,
		TraceWidth:        0.25,
		ViaSize:           0.8,
		ViaDrill:          0.4,
		ZoneThermalGap:    0.5,
		ZoneThermalBridge: 0.5,
		ZoneClearance:     0.5,
		ZoneMinThickness:  0.25,
		OutlineWidth:      0.1,
		HistoryLimit:      50,
	}
}

// LoadConfig reads a YAML config file. Fields left at zero fall back to the
// defaults, so partial files only override what they name.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg.withDefaults(), nil
}

// withDefaults fills zero-valued fields from DefaultConfig.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	fill := func(v *float64, d float64) {
		if *v == 0 {
			*v = d
		}
	}
	fill(&c.PlacementGrid, def.PlacementGrid)
	fill(&c.RoutingGrid, def.RoutingGrid)
	fill(&c.HitTolerance, def.HitTolerance)
	fill(&c.TraceWidth, def.TraceWidth)
	fill(&c.ViaSize, def.ViaSize)
	fill(&c.ViaDrill, def.ViaDrill)
	fill(&c.ZoneThermalGap, def.ZoneThermalGap)
	fill(&c.ZoneThermalBridge, def.ZoneThermalBridge)
	fill(&c.ZoneClearance, def.ZoneClearance)
	fill(&c.ZoneMinThickness, def.ZoneMinThickness)
	fill(&c.OutlineWidth, def.OutlineWidth)
	if c.HistoryLimit == 0 {
		c.HistoryLimit = def.HistoryLimit
	}
	return c
}
