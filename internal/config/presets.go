package config

import "sort"

// Presets are named starting points for common graph shapes. They are
// copies: mutating a returned config never changes the preset.
var presets = map[string]Config{
	"star-small": {
		Graph: GraphConfig{Shape: "star", Nodes: 8},
	},
	"star-large": {
		Graph: GraphConfig{Shape: "star", Nodes: 40},
		Layout: LayoutConfig{
			ChargeStrength:    4,
			ChargeMaxDistance: 80,
			RadialDistance:    16,
		},
	},
	"chain": {
		Graph: GraphConfig{Shape: "chain", Nodes: 20},
		Layout: LayoutConfig{
			RadialStrength: 0.05,
		},
	},
	"mesh": {
		Graph: GraphConfig{Shape: "mesh", Nodes: 25},
		Layout: LayoutConfig{
			LinkDistanceCentral: 4,
			RadialStrength:      0.02,
		},
	},
	"cloud": {
		Graph: GraphConfig{Shape: "random", Nodes: 30, ExtraLinks: 15, Seed: 7},
	},
}

// GetPreset returns the named preset merged over the defaults, or nil
// when the name is unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	if p.Graph.Shape != "" {
		cfg.Graph.Shape = p.Graph.Shape
	}
	if p.Graph.Nodes != 0 {
		cfg.Graph.Nodes = p.Graph.Nodes
	}
	if p.Graph.ExtraLinks != 0 {
		cfg.Graph.ExtraLinks = p.Graph.ExtraLinks
	}
	if p.Graph.Seed != 0 {
		cfg.Graph.Seed = p.Graph.Seed
	}
	mergeLayout(&cfg.Layout, p.Layout)
	return cfg
}

func mergeLayout(dst *LayoutConfig, src LayoutConfig) {
	if src.LinkDistanceCentral != 0 {
		dst.LinkDistanceCentral = src.LinkDistanceCentral
	}
	if src.LinkDistanceDefault != 0 {
		dst.LinkDistanceDefault = src.LinkDistanceDefault
	}
	if src.LinkStrength != 0 {
		dst.LinkStrength = src.LinkStrength
	}
	if src.ChargeStrength != 0 {
		dst.ChargeStrength = src.ChargeStrength
	}
	if src.ChargeMaxDistance != 0 {
		dst.ChargeMaxDistance = src.ChargeMaxDistance
	}
	if src.CenterStrength != 0 {
		dst.CenterStrength = src.CenterStrength
	}
	if src.RadialDistance != 0 {
		dst.RadialDistance = src.RadialDistance
	}
	if src.RadialStrength != 0 {
		dst.RadialStrength = src.RadialStrength
	}
	if src.ZStrength != 0 {
		dst.ZStrength = src.ZStrength
	}
	if src.FreezeAfterFrames != 0 {
		dst.FreezeAfterFrames = src.FreezeAfterFrames
	}
	if src.EdgeRefreshInterval != 0 {
		dst.EdgeRefreshInterval = src.EdgeRefreshInterval
	}
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
