package biome_test

import (
	"testing"

	"github.com/fresh-voxel/engine/biome"
)

func TestDefaultRegistryComplete(t *testing.T) {
	t.Parallel()

	reg := biome.DefaultRegistry()
	seen := map[string]biome.ID{}
	for id := biome.Tundra; id <= biome.River; id++ {
		p := reg.Properties(id)
		if p.Name == "" {
			t.Errorf("%v has no properties record", id)
			continue
		}
		if prev, ok := seen[p.Name]; ok {
			t.Errorf("%v and %v share the name %q", prev, id, p.Name)
		}
		seen[p.Name] = id
		if p.Surface == p.SubSurface && p.SubSurface == p.Deep && p.Deep == 0 {
			t.Errorf("%v has no materials", id)
		}
	}
}

func TestNewRegistryMissingEntry(t *testing.T) {
	t.Parallel()

	props := map[biome.ID]biome.Properties{}
	for id := biome.Tundra; id <= biome.River; id++ {
		props[id] = biome.DefaultRegistry().Properties(id)
	}
	delete(props, biome.Swamp)
	if _, err := biome.NewRegistry(props); err == nil {
		t.Fatal("expected error for missing Swamp record")
	}
}

func TestNewRegistryRejectsOutOfRangeFields(t *testing.T) {
	t.Parallel()

	props := map[biome.ID]biome.Properties{}
	for id := biome.Tundra; id <= biome.River; id++ {
		props[id] = biome.DefaultRegistry().Properties(id)
	}
	p := props[biome.Plains]
	p.TreeDensity = 1.5
	props[biome.Plains] = p
	if _, err := biome.NewRegistry(props); err == nil {
		t.Fatal("expected error for tree density above 1")
	}

	p = props[biome.Plains]
	p.TreeDensity = 0.05
	p.HeightOffset = -2
	props[biome.Plains] = p
	if _, err := biome.NewRegistry(props); err == nil {
		t.Fatal("expected error for height offset below -1")
	}
}

func TestRegistryHandsOutCopies(t *testing.T) {
	t.Parallel()

	reg := biome.DefaultRegistry()
	p := reg.Properties(biome.Plains)
	p.TreeDensity = 1
	if reg.Properties(biome.Plains).TreeDensity == 1 {
		t.Fatal("mutating a returned record changed the registry")
	}
}
