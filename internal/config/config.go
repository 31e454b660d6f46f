package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/sonograph/internal/layout"
)

// Config is the file-level configuration: which graph to build, the
// layout tunables, and collaborator settings. Layout values map 1:1
// onto layout.Config; validation happens there.
type Config struct {
	Graph  GraphConfig  `yaml:"graph"`
	Layout LayoutConfig `yaml:"layout"`
	Audio  AudioConfig  `yaml:"audio"`
	View   ViewConfig   `yaml:"view"`
}

type GraphConfig struct {
	Shape      string `yaml:"shape"` // star, chain, mesh, random
	Nodes      int    `yaml:"nodes"`
	ExtraLinks int    `yaml:"extra_links"`
	Seed       int64  `yaml:"seed"`
}

type LayoutConfig struct {
	LinkDistanceCentral float64 `yaml:"link_distance_central"`
	LinkDistanceDefault float64 `yaml:"link_distance_default"`
	LinkStrength        float64 `yaml:"link_strength"`
	ChargeStrength      float64 `yaml:"charge_strength"`
	ChargeMaxDistance   float64 `yaml:"charge_max_distance"`
	CenterStrength      float64 `yaml:"center_strength"`
	RadialDistance      float64 `yaml:"radial_distance"`
	RadialStrength      float64 `yaml:"radial_strength"`
	PositionStrength    float64 `yaml:"position_strength"`
	ZStrength           float64 `yaml:"z_strength"`
	CollisionPadding    float64 `yaml:"collision_padding"`
	CollisionStrength   float64 `yaml:"collision_strength"`
	AlphaDecay          float64 `yaml:"alpha_decay"`
	VelocityDecay       float64 `yaml:"velocity_decay"`
	FreezeAfterFrames   int     `yaml:"freeze_after_frames"`
	FreezeAlphaEpsilon  float64 `yaml:"freeze_alpha_epsilon"`
	EdgeRefreshInterval int     `yaml:"edge_refresh_interval"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type ViewConfig struct {
	FrameRate int `yaml:"frame_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Graph: GraphConfig{
			Shape:      "star",
			Nodes:      12,
			ExtraLinks: 4,
			Seed:       1,
		},
		Layout: fromLayout(layout.DefaultConfig()),
		Audio:  AudioConfig{Enabled: false, Volume: 0.25},
		View:   ViewConfig{FrameRate: 30},
	}
}

func fromLayout(c layout.Config) LayoutConfig {
	return LayoutConfig{
		LinkDistanceCentral: c.LinkDistanceCentral,
		LinkDistanceDefault: c.LinkDistanceDefault,
		LinkStrength:        c.LinkStrength,
		ChargeStrength:      c.ChargeStrength,
		ChargeMaxDistance:   c.ChargeMaxDistance,
		CenterStrength:      c.CenterStrength,
		RadialDistance:      c.RadialDistance,
		RadialStrength:      c.RadialStrength,
		PositionStrength:    c.PositionStrength,
		ZStrength:           c.ZStrength,
		CollisionPadding:    c.CollisionPadding,
		CollisionStrength:   c.CollisionStrength,
		AlphaDecay:          c.AlphaDecay,
		VelocityDecay:       c.VelocityDecay,
		FreezeAfterFrames:   c.FreezeAfterFrames,
		FreezeAlphaEpsilon:  c.FreezeAlphaEpsilon,
		EdgeRefreshInterval: c.EdgeRefreshInterval,
	}
}

// ToLayout converts the file representation into the engine's config.
func (c *Config) ToLayout() layout.Config {
	l := c.Layout
	return layout.Config{
		LinkDistanceCentral: l.LinkDistanceCentral,
		LinkDistanceDefault: l.LinkDistanceDefault,
		LinkStrength:        l.LinkStrength,
		ChargeStrength:      l.ChargeStrength,
		ChargeMaxDistance:   l.ChargeMaxDistance,
		CenterStrength:      l.CenterStrength,
		RadialDistance:      l.RadialDistance,
		RadialStrength:      l.RadialStrength,
		PositionStrength:    l.PositionStrength,
		ZStrength:           l.ZStrength,
		CollisionPadding:    l.CollisionPadding,
		CollisionStrength:   l.CollisionStrength,
		AlphaDecay:          l.AlphaDecay,
		VelocityDecay:       l.VelocityDecay,
		FreezeAfterFrames:   l.FreezeAfterFrames,
		FreezeAlphaEpsilon:  l.FreezeAlphaEpsilon,
		EdgeRefreshInterval: l.EdgeRefreshInterval,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
