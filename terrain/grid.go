// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

// Grid is a square heightfield stored row-major as float32.
// It owns the storage the generator cores write through.
type Grid struct {
	Size int
	data []float32
}

// NewGrid allocates a size×size grid of zeros.
func NewGrid(size int) *Grid {
	return &Grid{Size: size, data: make([]float32, size*size)}
}

// At returns the slot at (x, y). It is the storage accessor handed to the
// generator cores, which never retain the pointer beyond a single write.
func (g *Grid) At(x, y int) *float32 {
	return &g.data[y*g.Size+x]
}

// Index returns the linear slice index for (x, y).
func (g *Grid) Index(x, y int) int {
	return y*g.Size + x
}

// Wrap folds coordinates onto the grid toroidally.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.Size + g.Size) % g.Size
	y = (y%g.Size + g.Size) % g.Size
	return x, y
}

// SeedCorners sets the four corner anchor points required by the
// non-tileable generator.
func (g *Grid) SeedCorners(v float32) {
	edge := g.Size - 1
	*g.At(0, 0) = v
	*g.At(edge, 0) = v
	*g.At(0, edge) = v
	*g.At(edge, edge) = v
}

// SeedOrigin sets the single top-left anchor point required by the
// tileable generator.
func (g *Grid) SeedOrigin(v float32) {
	*g.At(0, 0) = v
}

// Values exposes the backing slice.
func (g *Grid) Values() []float32 {
	return g.data
}

// Bytes returns the grid clamped to 8-bit samples, row-major.
func (g *Grid) Bytes() []byte {
	buf := make([]byte, len(g.data))
	for i, v := range g.data {
		buf[i] = clampToByte(v)
	}
	return buf
}
