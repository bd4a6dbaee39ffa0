// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"image/png"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"

	"github.com/chewxy/math32"

	"heightfield/terrain"
	"heightfield/terrain/compressed"
	"heightfield/terrain/diamond"
	"heightfield/terrain/noise"
)

func main() {
	var (
		size       int
		seed       int64
		base       float64
		wrap       bool
		format     string
		generator  string
		out        string
		cpuProfile string
	)

	flag.IntVar(&size, "size", 513, "grid edge length (2^n+1, or 2^n with -wrap)")
	flag.Int64Var(&seed, "seed", terrain.Seed, "random seed")
	flag.Float64Var(&base, "variance", 64, "level 0 displacement bound, halved per level")
	flag.BoolVar(&wrap, "wrap", false, "generate a tileable heightfield")
	flag.StringVar(&format, "format", "pgm", "output format: pgm or png")
	flag.StringVar(&generator, "gen", "fractal", "png source: fractal, perlin or simplex")
	flag.StringVar(&out, "o", "", "output file (default stdout for pgm, out.png for png)")
	flag.StringVar(&cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close() // error handling omitted for example
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	switch format {
	case "pgm":
		runPGM(size, seed, float32(base), wrap, out)
	case "png":
		runPNG(size, seed, float32(base), generator, out)
	default:
		log.Fatal("unknown format: ", format)
	}
}

// runPGM drives the generator core directly on a seeded grid and emits
// plain-text greyscale output.
func runPGM(size int, seed int64, base float32, wrap bool, out string) {
	grid := terrain.NewGrid(size)

	r := rand.New(rand.NewSource(seed))
	random := func(limit float32) float32 {
		return r.Float32() * limit
	}
	variance := func(level int) float32 {
		return base * math32.Pow(0.5, float32(level))
	}

	var err error
	if wrap {
		grid.SeedOrigin(noise.SeaLevelSeed)
		err = diamond.Wrap(size, random, variance, grid.At)
	} else {
		grid.SeedCorners(noise.SeaLevelSeed)
		err = diamond.NoWrap(size, random, variance, grid.At)
	}
	if err != nil {
		log.Fatal(err)
	}

	w := os.Stdout
	if out != "" && out != "-" {
		file, err := os.Create(out)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		w = file
	}

	if err := terrain.WritePGM(w, grid.Bytes(), size, size); err != nil {
		log.Fatal(err)
	}
}

// runPNG renders a Source region through the altitude band palette.
func runPNG(size int, seed int64, base float32, generator, out string) {
	var source terrain.Source

	switch generator {
	case "fractal":
		f, err := noise.NewFractal(seed, terrain.TileSize, base)
		if err != nil {
			log.Fatal(err)
		}
		source = f
	case "perlin":
		source = noise.NewPerlin(seed, 0, 0)
	case "simplex":
		source = noise.NewSimplex(seed)
	default:
		log.Fatal("unknown generator: ", generator)
	}

	t := compressed.New(source)
	img := terrain.Render(t, 0, 0, size, size)

	if out == "" {
		out = "out.png"
	}
	file, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err = png.Encode(file, img); err != nil {
		log.Fatal(err)
	}
}
