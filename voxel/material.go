// Package voxel defines the material identifiers assigned to generated
// voxels. The set mirrors the engine's block palette; the generation core
// only ever reads these values, it attaches no behaviour to them.
package voxel

// Material identifies the substance filling a single voxel.
type Material uint8

const (
	Air Material = iota
	Bedrock
	Stone
	Dirt
	Grass
	Sand
	RedSand
	Sandstone
	RedSandstone
	Gravel
	Snow
	Ice
	Water
	Mud
	TallGrass
	Flower
	Wood
	Leaves

	materialCount
)

var materialNames = [...]string{
	Air:          "air",
	Bedrock:      "bedrock",
	Stone:        "stone",
	Dirt:         "dirt",
	Grass:        "grass",
	Sand:         "sand",
	RedSand:      "red_sand",
	Sandstone:    "sandstone",
	RedSandstone: "red_sandstone",
	Gravel:       "gravel",
	Snow:         "snow",
	Ice:          "ice",
	Water:        "water",
	Mud:          "mud",
	TallGrass:    "tall_grass",
	Flower:       "flower",
	Wood:         "wood",
	Leaves:       "leaves",
}

// String returns the palette name of the material.
func (m Material) String() string {
	if int(m) < len(materialNames) {
		return materialNames[m]
	}
	return "unknown"
}

// Solid reports whether the material occupies its voxel with a solid block.
// Air, water and decorations such as tall grass are not solid.
func (m Material) Solid() bool {
	switch m {
	case Air, Water, TallGrass, Flower:
		return false
	}
	return true
}
