package biome

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// blendGridSize is the edge length of the sample grid used for blending.
const blendGridSize = 5

// Blended is a Properties record averaged over a neighbourhood of biomes.
// Dominant carries the biome at the centre of the neighbourhood; the material
// fields always come from the dominant biome since materials cannot be
// averaged.
type Blended struct {
	Properties
	Dominant ID
}

// Blender computes smoothed biome properties near biome boundaries.
//
// Blending samples a 5x5 grid of classifications, which makes it roughly 25x
// the cost of a single lookup. Callers are expected to gate it behind
// TransitionZone and use the raw registry record everywhere else.
type Blender struct {
	classifier *Classifier
	registry   *Registry
}

// NewBlender builds a Blender over the classifier and registry.
func NewBlender(c *Classifier, r *Registry) *Blender {
	return &Blender{classifier: c, registry: r}
}

// BlendedProperties samples a 5x5 grid spread across blendRadius around the
// column and returns the inverse-distance-weighted average of the sampled
// biome records. A neighbourhood that classifies uniformly returns the raw
// record of that biome unchanged.
func (b *Blender) BlendedProperties(worldX, worldZ int, blendRadius float64) Blended {
	spacing := blendRadius / blendGridSize
	half := blendGridSize / 2

	var (
		ids     [blendGridSize * blendGridSize]ID
		weights [blendGridSize * blendGridSize]float64
		total   float64
		n       int
		uniform = true
	)
	centre := b.classifier.At(worldX, worldZ)
	for dx := -half; dx <= half; dx++ {
		for dz := -half; dz <= half; dz++ {
			var id ID
			if dx == 0 && dz == 0 {
				id = centre
			} else {
				id = b.classifier.At(worldX+int(float64(dx)*spacing), worldZ+int(float64(dz)*spacing))
			}
			if id != centre {
				uniform = false
			}
			dist := math.Sqrt(float64(dx*dx + dz*dz))
			w := 1 / (1 + dist)
			ids[n], weights[n] = id, w
			total += w
			n++
		}
	}

	if uniform {
		return Blended{Properties: b.registry.Properties(centre), Dominant: centre}
	}

	var out Properties
	var colour mgl64.Vec3
	for i := 0; i < n; i++ {
		p := b.registry.Properties(ids[i])
		w := weights[i] / total

		out.Temperature += p.Temperature * w
		out.Humidity += p.Humidity * w
		out.Rainfall += p.Rainfall * w
		out.HeightVariation += p.HeightVariation * w
		out.HeightOffset += p.HeightOffset * w
		out.Roughness += p.Roughness * w
		out.TreeDensity += p.TreeDensity * w
		out.GrassDensity += p.GrassDensity * w
		out.FlowerDensity += p.FlowerDensity * w
		colour = colour.Add(p.MapColor.Mul(w))
	}

	dominant := b.registry.Properties(centre)
	out.Name = dominant.Name
	out.Surface = dominant.Surface
	out.SubSurface = dominant.SubSurface
	out.Deep = dominant.Deep
	out.MapColor = colour
	return Blended{Properties: out, Dominant: centre}
}

// TransitionZone reports whether the column sits near a biome boundary. It
// compares the centre classification against the four cardinal neighbours at
// checkDistance; any mismatch marks the column as transitional.
func (b *Blender) TransitionZone(worldX, worldZ, checkDistance int) bool {
	centre := b.classifier.At(worldX, worldZ)
	return b.classifier.At(worldX, worldZ-checkDistance) != centre ||
		b.classifier.At(worldX, worldZ+checkDistance) != centre ||
		b.classifier.At(worldX+checkDistance, worldZ) != centre ||
		b.classifier.At(worldX-checkDistance, worldZ) != centre
}
