// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"math/rand"

	"github.com/chewxy/math32"

	"heightfield/terrain"
	"heightfield/terrain/diamond"
)

// SeaLevelSeed is the anchor height of the fractal tile's origin.
const SeaLevelSeed = 128

// Fractal generates a tileable heightmap with the diamond-square
// algorithm and serves arbitrary regions of it by toroidal lookup, so
// the output repeats seamlessly in both axes.
type Fractal struct {
	tile []byte
	size int
}

func NewFractalDefault() (*Fractal, error) {
	return NewFractal(terrain.Seed, terrain.TileSize, 64)
}

// NewFractal generates one tile of edge length size (a power of two,
// at least 4) using a seeded uniform source and the halving variance
// schedule base * 0.5^level.
func NewFractal(seed int64, size int, base float32) (*Fractal, error) {
	grid := terrain.NewGrid(size)
	grid.SeedOrigin(SeaLevelSeed)

	r := rand.New(rand.NewSource(seed))
	err := diamond.Wrap(size,
		func(limit float32) float32 {
			return r.Float32() * limit
		},
		func(level int) float32 {
			return base * math32.Pow(0.5, float32(level))
		},
		grid.At,
	)
	if err != nil {
		return nil, err
	}

	return &Fractal{tile: grid.Bytes(), size: size}, nil
}

// Size returns the edge length of the underlying tile.
func (f *Fractal) Size() int {
	return f.size
}

// Generate implements terrain.Source.
func (f *Fractal) Generate(px, py, width, height int) []byte {
	buf := make([]byte, width*height)

	for j := 0; j < height; j++ {
		row := f.tile[mod(py+j, f.size)*f.size:]
		for i := 0; i < width; i++ {
			buf[i+j*width] = row[mod(px+i, f.size)]
		}
	}

	return buf
}

func mod(a, n int) int {
	return (a%n + n) % n
}
