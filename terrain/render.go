// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"image"
	"image/color"
)

type ColorVec [3]float32

var colors = [...]ColorVec{
	RGB(0, 50, 115),
	RGB(0, 75, 130),
	RGB(194, 178, 128),
	RGB(90, 180, 30),
	RGB(105, 110, 115),
	Gray(220),
}

// Render draws a region of source through the altitude band palette.
func Render(source Source, x, y, width, height int) image.Image {
	heightmap := source.Generate(x, y, width, height)
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			var c ColorVec

			h := heightmap[i+j*width]
			switch {
			case h <= OceanLevel:
				c = colors[0].Lerp(colors[1], clamp(float32(h)/float32(OceanLevel)))
			case h <= SandLevel:
				c = colors[2]
			case h <= GrassLevel:
				c = colors[2].Lerp(colors[3], clamp(float32(h-SandLevel)*0.05))
			case h <= RockLevel:
				c = colors[3].Lerp(colors[4], clamp(float32(h-GrassLevel)*0.1))
			default:
				c = colors[4].Lerp(colors[5], clamp(float32(h-RockLevel)*0.07))
			}

			img.Set(i, j, c.Color())
		}
	}

	return img
}

func Gray(v byte) ColorVec {
	return RGB(v, v, v)
}

func RGB(r, g, b byte) ColorVec {
	const factor = 1.0 / 255
	return ColorVec{float32(r) * factor, float32(g) * factor, float32(b) * factor}
}

func (vec ColorVec) Lerp(other ColorVec, factor float32) ColorVec {
	for i := range vec {
		vec[i] += (other[i] - vec[i]) * factor
	}
	return vec
}

func (vec ColorVec) Color() color.RGBA {
	return color.RGBA{R: floatToByte(vec[0]), G: floatToByte(vec[1]), B: floatToByte(vec[2]), A: 255}
}

func floatToByte(f float32) byte {
	if f < 0 {
		return 0
	}
	if f > 1.0 {
		return 255
	}
	return byte(f * 255)
}
