package chunkgen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fresh-voxel/engine/biome"
	"github.com/fresh-voxel/engine/climate"
	"github.com/fresh-voxel/engine/terrain"
	"github.com/pelletier/go-toml"
)

// FileConfig is the on-disk representation of the generator configuration.
// Zero values select the engine defaults, so a partially filled file is
// valid.
type FileConfig struct {
	World struct {
		// Seed is the world seed. The file is the source of truth for
		// tools; the engine passes the project seed in directly.
		Seed int64 `toml:"seed"`
	} `toml:"world"`
	Climate struct {
		LatitudeScale        float64 `toml:"latitude_scale"`
		LatitudeWeight       float64 `toml:"latitude_weight"`
		TemperatureFrequency float64 `toml:"temperature_frequency"`
		HumidityFrequency    float64 `toml:"humidity_frequency"`
		Octaves              int     `toml:"octaves"`
	} `toml:"climate"`
	Elevation struct {
		Frequency float64 `toml:"frequency"`
		Octaves   int     `toml:"octaves"`
	} `toml:"elevation"`
	Thresholds struct {
		DeepOcean float64 `toml:"deep_ocean"`
		Ocean     float64 `toml:"ocean"`
		Beach     float64 `toml:"beach"`
		Hills     float64 `toml:"hills"`
		Mountains float64 `toml:"mountains"`
		SnowLine  float64 `toml:"snow_line"`
		Cold      float64 `toml:"cold"`
		Warm      float64 `toml:"warm"`
	} `toml:"thresholds"`
	Terrain struct {
		WorldHeight             int     `toml:"world_height"`
		BaseHeight              int     `toml:"base_height"`
		SeaLevel                int     `toml:"sea_level"`
		OffsetScale             float64 `toml:"offset_scale"`
		VariationScale          float64 `toml:"variation_scale"`
		BlendRadius             float64 `toml:"blend_radius"`
		TransitionCheckDistance int     `toml:"transition_check_distance"`
	} `toml:"terrain"`
	Pool struct {
		Workers   int    `toml:"workers"`
		QueueSize int    `toml:"queue_size"`
		StorePath string `toml:"store_path"`
	} `toml:"pool"`
}

// GeneratorConfig converts the file configuration into a GeneratorConfig.
func (f FileConfig) GeneratorConfig() GeneratorConfig {
	thresholds := biome.Thresholds{
		DeepOcean: f.Thresholds.DeepOcean,
		Ocean:     f.Thresholds.Ocean,
		Beach:     f.Thresholds.Beach,
		Hills:     f.Thresholds.Hills,
		Mountains: f.Thresholds.Mountains,
		SnowLine:  f.Thresholds.SnowLine,
		Cold:      f.Thresholds.Cold,
		Warm:      f.Thresholds.Warm,
	}
	if thresholds == (biome.Thresholds{}) {
		thresholds = biome.DefaultThresholds()
	}
	return GeneratorConfig{
		Climate: climate.Config{
			LatitudeScale:        f.Climate.LatitudeScale,
			LatitudeWeight:       f.Climate.LatitudeWeight,
			TemperatureFrequency: f.Climate.TemperatureFrequency,
			HumidityFrequency:    f.Climate.HumidityFrequency,
			Octaves:              f.Climate.Octaves,
		},
		Thresholds: thresholds,
		Terrain: terrain.Config{
			WorldHeight:             f.Terrain.WorldHeight,
			BaseHeight:              f.Terrain.BaseHeight,
			SeaLevel:                f.Terrain.SeaLevel,
			OffsetScale:             f.Terrain.OffsetScale,
			VariationScale:          f.Terrain.VariationScale,
			BlendRadius:             f.Terrain.BlendRadius,
			TransitionCheckDistance: f.Terrain.TransitionCheckDistance,
		},
		ElevationFrequency: f.Elevation.Frequency,
		ElevationOctaves:   f.Elevation.Octaves,
	}
}

// LoadConfig reads the generator configuration from the TOML file at path.
// If the file does not exist, it is created with the default configuration.
func LoadConfig(path string) (FileConfig, error) {
	var conf FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return conf, fmt.Errorf("chunkgen: read config: %w", err)
		}
		encoded, err := toml.Marshal(conf)
		if err != nil {
			return conf, fmt.Errorf("chunkgen: encode default config: %w", err)
		}
		if err := os.WriteFile(path, encoded, 0644); err != nil {
			return conf, fmt.Errorf("chunkgen: write default config: %w", err)
		}
		return conf, nil
	}
	if err := toml.Unmarshal(data, &conf); err != nil {
		return conf, fmt.Errorf("chunkgen: decode config: %w", err)
	}
	return conf, nil
}
