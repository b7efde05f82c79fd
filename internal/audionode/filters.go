package audionode

import (
	"encoding/json"
	"sort"
)

// FilterOff clears every filter
const FilterOff = "off"

// filterPresets maps user facing names to Lavalink filter payloads.
// A PATCH with filters replaces all filters, so "off" is the empty object.
var filterPresets = map[string]map[string]any{
	FilterOff: {},
	"nightcore": {
		"timescale": map[string]any{"speed": 1.2, "pitch": 1.2, "rate": 1.0},
	},
	"vaporwave": {
		"timescale": map[string]any{"speed": 0.85, "pitch": 0.8, "rate": 1.0},
	},
	"bassboost": {
		"equalizer": []map[string]any{
			{"band": 0, "gain": 0.6},
			{"band": 1, "gain": 0.67},
			{"band": 2, "gain": 0.67},
			{"band": 3, "gain": 0.4},
			{"band": 4, "gain": -0.5},
			{"band": 5, "gain": 0.15},
		},
	},
	"8d": {
		"rotation": map[string]any{"rotationHz": 0.2},
	},
	"karaoke": {
		"karaoke": map[string]any{"level": 1.0, "monoLevel": 1.0, "filterBand": 220.0, "filterWidth": 100.0},
	},
	"tremolo": {
		"tremolo": map[string]any{"frequency": 2.0, "depth": 0.5},
	},
	"vibrato": {
		"vibrato": map[string]any{"frequency": 2.0, "depth": 0.5},
	},
}

// IsKnownFilter reports whether name is a filter preset
func IsKnownFilter(name string) bool {
	_, ok := filterPresets[name]
	return ok
}

// FilterNames returns the preset names in sorted order
func FilterNames() []string {
	names := make([]string, 0, len(filterPresets))
	for name := range filterPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func filterPayload(name string) (json.RawMessage, error) {
	preset, ok := filterPresets[name]
	if !ok {
		return nil, ErrUnknownFilter
	}
	return json.Marshal(preset)
}
