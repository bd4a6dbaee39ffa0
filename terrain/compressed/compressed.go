// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package compressed caches a terrain.Source in lazily generated chunks
// and serves run-length encoded excerpts of it.
package compressed

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"heightfield/terrain"
)

// Size is the edge length of the cached area in terrain space.
const Size = 2048

// chunkSize is the width and height of a chunk.
// It must be a power of 2.
const chunkSize = 64

// chunk stores a square region of heightmap samples.
type chunk struct {
	data [chunkSize * chunkSize]byte
}

type Terrain struct {
	generator  terrain.Source
	chunks     [Size / chunkSize][Size / chunkSize]*chunk
	chunkCount int32
	mutex      sync.Mutex
}

func New(generator terrain.Source) *Terrain {
	return &Terrain{
		generator: generator,
	}
}

// At returns the sample at (x, y), generating its chunk on first use.
// Coordinates outside [0, Size) read as zero.
func (t *Terrain) At(x, y int) byte {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return 0
	}

	c := t.getChunk(x, y)
	return c.data[(y&(chunkSize-1))*chunkSize+(x&(chunkSize-1))]
}

// Region returns an encoded excerpt clamped to the cached area.
// The caller should return it with Data.Pool when done.
func (t *Terrain) Region(x, y, width, height int) *terrain.Data {
	x = maxInt(0, x)
	y = maxInt(0, y)
	width = minInt(width, Size-x)
	height = minInt(height, Size-y)
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	data := terrain.NewData()
	var buffer terrain.Buffer
	buffer.Reset(data.Data)

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			_ = buffer.WriteByte(t.At(x+i, y+j))
		}
	}

	data.X = x
	data.Y = y
	data.Data = buffer.Buffer()
	data.Stride = width
	data.Length = width * height

	return data
}

// Generate implements terrain.Source, serving the cached view.
func (t *Terrain) Generate(x, y, width, height int) []byte {
	buf := make([]byte, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			buf[i+j*width] = t.At(x+i, y+j)
		}
	}
	return buf
}

// Chunks returns how many chunks have been generated.
func (t *Terrain) Chunks() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return int(t.chunkCount)
}

// Debug prints debug info to os.Stdout.
func (t *Terrain) Debug() {
	fmt.Println("compressed terrain: chunks:", t.Chunks())
}

// X and Y in 0 -> Size coordinates
func (t *Terrain) getChunk(x, y int) *chunk {
	ucx := x / chunkSize
	ucy := y / chunkSize

	// Use atomics/mutex to make sure chunk is generated
	// Basically sync.Once for each chunk but with shared mutex
	chunkPtr := (*unsafe.Pointer)(unsafe.Pointer(&t.chunks[ucx][ucy]))
	c := (*chunk)(atomic.LoadPointer(chunkPtr))

	if c == nil {
		t.mutex.Lock()
		defer t.mutex.Unlock()

		// Load again to make sure its still nil after acquiring the lock
		c = (*chunk)(atomic.LoadPointer(chunkPtr))
		if c == nil {
			c = generateChunk(t.generator, ucx, ucy)
			t.chunkCount++

			atomic.StorePointer(chunkPtr, unsafe.Pointer(c))
		}
	}

	return c
}

func generateChunk(generator terrain.Source, ucx, ucy int) *chunk {
	heightmap := generator.Generate(ucx*chunkSize, ucy*chunkSize, chunkSize, chunkSize)

	// Early bounds check
	_ = heightmap[chunkSize*chunkSize-1]

	c := new(chunk)
	copy(c.data[:], heightmap)
	return c
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
