// Command biomemap renders a top-down biome map of a world seed to a PNG
// file. It is a development tool for eyeballing biome distribution and
// transition smoothness without launching the engine.
//
// Usage:
//
//	biomemap -seed 12345 -size 512 -step 4 -o map.png [-config generation.toml] [-blend]
//
// Each pixel covers step world voxels. With -blend, pixels in transition
// zones use blended map colours, previewing what the terrain shader will do.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"github.com/fresh-voxel/engine/biome"
	"github.com/fresh-voxel/engine/chunkgen"
	"github.com/go-gl/mathgl/mgl64"
)

func main() {
	var (
		seed     = flag.Int64("seed", 0, "world seed")
		size     = flag.Int("size", 512, "output image edge length in pixels")
		step     = flag.Int("step", 4, "world voxels per pixel")
		out      = flag.String("o", "biomemap.png", "output PNG path")
		confPath = flag.String("config", "", "optional generator config TOML")
		blend    = flag.Bool("blend", false, "blend colours in transition zones")
	)
	flag.Parse()

	if err := run(*seed, *size, *step, *out, *confPath, *blend); err != nil {
		slog.Error("biomemap failed", "err", err)
		os.Exit(1)
	}
}

func run(seed int64, size, step int, out, confPath string, blend bool) error {
	var genConf chunkgen.GeneratorConfig
	if confPath != "" {
		fileConf, err := chunkgen.LoadConfig(confPath)
		if err != nil {
			return err
		}
		genConf = fileConf.GeneratorConfig()
		if seed == 0 {
			seed = fileConf.World.Seed
		}
	}

	gen, err := chunkgen.NewGenerator(seed, genConf)
	if err != nil {
		return err
	}
	synth := gen.Synthesizer()
	cls := gen.Classifier()
	reg := biome.DefaultRegistry()

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := size / 2
	for px := 0; px < size; px++ {
		for pz := 0; pz < size; pz++ {
			worldX := (px - half) * step
			worldZ := (pz - half) * step

			var c mgl64.Vec3
			if blend {
				props, _ := synth.PropertiesAt(worldX, worldZ)
				c = props.MapColor
			} else {
				c = reg.Properties(cls.At(worldX, worldZ)).MapColor
			}
			img.SetRGBA(px, pz, color.RGBA{
				R: channel(c.X()),
				G: channel(c.Y()),
				B: channel(c.Z()),
				A: 0xff,
			})
		}
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", out, err)
	}
	slog.Info("biome map written", "path", out, "seed", seed, "size", size, "step", step)
	return nil
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v * 0xff)
}
