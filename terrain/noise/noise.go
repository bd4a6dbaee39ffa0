// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package noise implements the terrain.Source generators.
package noise

import (
	"github.com/aquilax/go-perlin"

	"heightfield/terrain"
)

const (
	frequency     = 0.01
	zoneFrequency = 0.0015
)

// Perlin generates a heightmap from layered perlin noise.
type Perlin struct {
	// Land/coast heightmap noise
	landHi *perlin.Perlin // for smaller/higher frequency details
	landLo *perlin.Perlin // for larger/lower frequency details

	// Open water depth floor heightmap noise
	waterLo *perlin.Perlin

	offsetX, offsetY float64
}

func NewPerlinDefault() *Perlin {
	return NewPerlin(terrain.Seed, 0, 0)
}

// NewPerlin creates a new Perlin source with a seed.
func NewPerlin(seed int64, offsetX, offsetY float64) *Perlin {
	return &Perlin{
		landHi:  perlin.NewPerlin(1.5, 2.0, 4, seed),
		landLo:  perlin.NewPerlin(2.5, 3.0, 4, seed+1),
		waterLo: perlin.NewPerlin(2, 3.0, 3, seed+2),
		offsetX: offsetX,
		offsetY: offsetY,
	}
}

// Generate implements terrain.Source.
func (g *Perlin) Generate(px, py, width, height int) []byte {
	buf := make([]byte, width*height)

	offX := g.offsetX + float64(px)
	offY := g.offsetY + float64(py)

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			x := float64(i) + offX
			y := float64(j) + offY

			h := g.landHi.Noise2D(x*frequency, y*frequency)*250 + terrain.SandLevel - 50

			// Zone is very low frequency
			zone := g.landLo.Noise2D(x*zoneFrequency, y*zoneFrequency)*2.0 + 0.4
			if zone > 1 {
				zone = 1
			}
			h *= zone

			depthFloor := clamp((g.waterLo.Noise2D(x*zoneFrequency, y*zoneFrequency)+0.3)*4, 0, 1) * terrain.SandLevel

			buf[i+j*width] = clampToByte(max(h, depthFloor))
		}
	}

	return buf
}
