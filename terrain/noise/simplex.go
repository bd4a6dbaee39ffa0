// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	simplexFrequency   = 0.005
	simplexOctaves     = 4
	simplexPersistence = 0.5
)

// Simplex generates a heightmap from an octave sum of opensimplex noise.
type Simplex struct {
	noise opensimplex.Noise
}

// NewSimplex creates a new Simplex source with a seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{noise: opensimplex.New(seed)}
}

// Generate implements terrain.Source.
func (s *Simplex) Generate(px, py, width, height int) []byte {
	buf := make([]byte, width*height)

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			x := float64(px + i)
			y := float64(py + j)

			var h float64
			amplitude := 1.0
			freq := simplexFrequency
			for o := 0; o < simplexOctaves; o++ {
				h += s.noise.Eval2(x*freq, y*freq) * amplitude
				amplitude *= simplexPersistence
				freq *= 2
			}

			// Map [-1, 1] onto the byte range
			buf[i+j*width] = clampToByte((h*0.5 + 0.5) * 255)
		}
	}

	return buf
}
