// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terrain holds the heightfield storage, serialization, and
// rendering shared by the generators.
package terrain

const (
	// Seed default generator seed.
	Seed = int64(56)
	// TileSize default edge length of generated tiles.
	// A power of two so the tileable generator accepts it.
	TileSize = 256
)

// Source generates heightmap data.
type Source interface {
	// Generate returns width*height samples in row-major order for the
	// region whose top-left corner is (x, y) in terrain space.
	Generate(x, y, width, height int) []byte
}
