// Package biome defines the biome identifiers of the overworld, the
// per-biome property records consumed by terrain synthesis, and the
// classification and blending logic that assigns biomes to world columns.
package biome

// ID identifies one of the overworld biomes. The set is closed; new biomes
// require a new identifier and a Properties record in the registry.
type ID uint8

const (
	// Cold biomes.
	Tundra ID = iota
	Taiga
	SnowyMountains
	IcePlains

	// Temperate biomes.
	Plains
	Forest
	DenseForest
	Mountains
	Hills

	// Warm biomes.
	Desert
	HotDesert
	Savanna
	Jungle
	Swamp

	// Special biomes.
	Beach
	Ocean
	DeepOcean
	// River is reserved for the river carving pass and is never produced
	// by climate classification.
	River

	idCount
)

var idNames = [...]string{
	Tundra:         "Tundra",
	Taiga:          "Taiga",
	SnowyMountains: "Snowy Mountains",
	IcePlains:      "Ice Plains",
	Plains:         "Plains",
	Forest:         "Forest",
	DenseForest:    "Dense Forest",
	Mountains:      "Mountains",
	Hills:          "Hills",
	Desert:         "Desert",
	HotDesert:      "Hot Desert",
	Savanna:        "Savanna",
	Jungle:         "Jungle",
	Swamp:          "Swamp",
	Beach:          "Beach",
	Ocean:          "Ocean",
	DeepOcean:      "Deep Ocean",
	River:          "River",
}

// String returns the display name of the biome.
func (id ID) String() string {
	if int(id) < len(idNames) {
		return idNames[id]
	}
	return "Unknown"
}

// Aquatic reports whether the biome is covered by water at sea level.
func (id ID) Aquatic() bool {
	switch id {
	case Ocean, DeepOcean, River:
		return true
	}
	return false
}
