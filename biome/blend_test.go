package biome_test

import (
	"reflect"
	"testing"

	"github.com/fresh-voxel/engine/biome"
)

// uniformNeighbourhood reports whether every 5x5 blend sample around the
// column classifies to the centre biome, mirroring the blender's grid.
func uniformNeighbourhood(c *biome.Classifier, x, z int, radius float64) bool {
	spacing := radius / 5
	centre := c.At(x, z)
	for dx := -2; dx <= 2; dx++ {
		for dz := -2; dz <= 2; dz++ {
			if c.At(x+int(float64(dx)*spacing), z+int(float64(dz)*spacing)) != centre {
				return false
			}
		}
	}
	return true
}

// TestBlendIdentity verifies the identity invariant: blending a uniform
// neighbourhood returns the biome's raw record field for field.
func TestBlendIdentity(t *testing.T) {
	t.Parallel()

	cls := newClassifier(t, 12345)
	reg := biome.DefaultRegistry()
	bl := biome.NewBlender(cls, reg)

	const radius = 64.0
	found := 0
	for i := 0; i < 5000 && found < 5; i++ {
		x, z := i*97-200_000, (i*53)%90_000-45_000
		if !uniformNeighbourhood(cls, x, z, radius) {
			continue
		}
		found++
		id := cls.At(x, z)
		got := bl.BlendedProperties(x, z, radius)
		if got.Dominant != id {
			t.Fatalf("dominant biome at (%d, %d) = %v, want %v", x, z, got.Dominant, id)
		}
		if want := reg.Properties(id); !reflect.DeepEqual(got.Properties, want) {
			t.Fatalf("blended properties at uniform (%d, %d) diverge from raw record:\n got %+v\nwant %+v", x, z, got.Properties, want)
		}
	}
	if found == 0 {
		t.Fatal("no uniform neighbourhood found in sweep; classifier output suspicious")
	}
}

func TestBlendedAveragesStayInRange(t *testing.T) {
	t.Parallel()

	cls := newClassifier(t, 77)
	bl := biome.NewBlender(cls, biome.DefaultRegistry())

	for i := 0; i < 300; i++ {
		x, z := i*211-30_000, i*139-20_000
		p := bl.BlendedProperties(x, z, 64).Properties
		for name, v := range map[string]float64{
			"temperature":     p.Temperature,
			"humidity":        p.Humidity,
			"rainfall":        p.Rainfall,
			"heightVariation": p.HeightVariation,
			"roughness":       p.Roughness,
			"treeDensity":     p.TreeDensity,
			"grassDensity":    p.GrassDensity,
			"flowerDensity":   p.FlowerDensity,
		} {
			if v < 0 || v > 1 {
				t.Fatalf("blended %s at (%d, %d) = %v outside [0,1]", name, x, z, v)
			}
		}
		if p.HeightOffset < -1 || p.HeightOffset > 1 {
			t.Fatalf("blended heightOffset at (%d, %d) = %v outside [-1,1]", x, z, p.HeightOffset)
		}
	}
}

// TestBlendedMaterialsFromDominant verifies materials are never averaged:
// they always come from the centre biome.
func TestBlendedMaterialsFromDominant(t *testing.T) {
	t.Parallel()

	cls := newClassifier(t, 5)
	reg := biome.DefaultRegistry()
	bl := biome.NewBlender(cls, reg)

	for i := 0; i < 200; i++ {
		x, z := i*173-15_000, i*97-9_000
		got := bl.BlendedProperties(x, z, 64)
		want := reg.Properties(cls.At(x, z))
		if got.Surface != want.Surface || got.SubSurface != want.SubSurface || got.Deep != want.Deep {
			t.Fatalf("blended materials at (%d, %d) not taken from dominant biome", x, z)
		}
	}
}

func TestTransitionZoneMatchesClassifier(t *testing.T) {
	t.Parallel()

	cls := newClassifier(t, 12345)
	bl := biome.NewBlender(cls, biome.DefaultRegistry())

	const check = 16
	for i := 0; i < 400; i++ {
		x, z := i*119-25_000, i*71-12_000
		centre := cls.At(x, z)
		want := cls.At(x, z-check) != centre ||
			cls.At(x, z+check) != centre ||
			cls.At(x+check, z) != centre ||
			cls.At(x-check, z) != centre
		if got := bl.TransitionZone(x, z, check); got != want {
			t.Fatalf("TransitionZone(%d, %d, %d) = %v, classifier says %v", x, z, check, got, want)
		}
	}
}

// TestTransitionZoneAtBoundary walks a line until the biome changes and
// checks the predicate fires on the boundary column, then checks it stays
// quiet in the middle of a uniform region.
func TestTransitionZoneAtBoundary(t *testing.T) {
	t.Parallel()

	cls := newClassifier(t, 12345)
	bl := biome.NewBlender(cls, biome.DefaultRegistry())

	const check = 16
	boundary := -1
	prev := cls.At(0, 0)
	for x := 1; x < 50_000; x++ {
		if cur := cls.At(x, 0); cur != prev {
			boundary = x
			break
		}
	}
	if boundary < 0 {
		t.Fatal("no biome boundary found along 50k columns; classifier output suspicious")
	}
	hit := false
	for x := boundary - check; x <= boundary+check && !hit; x++ {
		hit = bl.TransitionZone(x, 0, check)
	}
	if !hit {
		t.Errorf("TransitionZone false everywhere around boundary column x=%d", boundary)
	}

	quiet := false
	for i := 0; i < 5000 && !quiet; i++ {
		x, z := i*97-200_000, (i*53)%90_000-45_000
		if uniformNeighbourhood(cls, x, z, float64(check*5)) && !bl.TransitionZone(x, z, check) {
			quiet = true
		}
	}
	if !quiet {
		t.Error("no quiet column found: predicate fires everywhere")
	}
}
