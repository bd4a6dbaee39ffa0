// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diamond implements the diamond-square midpoint displacement
// algorithm in two variants: NoWrap produces a bounded (non-tileable)
// heightfield and Wrap produces a toroidal (tileable) one.
//
// Both are parameterized over three caller-supplied capabilities: a
// randomness source, a per-level variance schedule, and a storage accessor.
// The algorithm itself never allocates and never sees the storage layout.
package diamond

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Value is the set of element types a heightfield may hold.
//
// Averages are computed in the element type, so integer types must have
// headroom for the sum of four values; overflow is the caller's concern.
type Value interface {
	constraints.Integer | constraints.Float
}

// InvalidSizeError reports a size that does not fit the variant's required
// form. It is returned before any callback is invoked.
type InvalidSizeError struct {
	Size int
	Wrap bool
}

func (e *InvalidSizeError) Error() string {
	if e.Wrap {
		return fmt.Sprintf("diamond: invalid size %d: must be a power of two, at least 4", e.Size)
	}
	return fmt.Sprintf("diamond: invalid size %d: must be a power of two plus one, at least 5", e.Size)
}

// NoWrap generates a size×size heightfield where size = 2^n+1, n >= 2.
//
// The caller must seed all four corner cells beforehand; they are never
// written. Every other cell is written exactly once, with exactly one call
// to random per written cell: the new value is the mean of the finalized
// neighbors plus random(2*variance) - variance. Diamond points on the outer
// border reach only 3 neighbors and are averaged over those 3, so border
// statistics differ slightly from the interior.
//
// variance is called once per level, before that level's passes. Both
// passes traverse the grid row-major (y outer, x inner); squares complete
// before diamonds at each level.
func NoWrap[T Value](size int, random func(limit T) T, variance func(level int) T, at func(x, y int) *T) error {
	if size < 5 || !powerOfTwo(size-1) {
		return &InvalidSizeError{Size: size}
	}

	level := 0
	for step := size - 1; step > 1; step /= 2 {
		half := step / 2
		v := variance(level)

		// Square pass: sub-square centers from their four corners.
		for y := half; y < size; y += step {
			for x := half; x < size; x += step {
				sum := *at(x-half, y-half) + *at(x+half, y-half) +
					*at(x-half, y+half) + *at(x+half, y+half)
				*at(x, y) = sum/4 + random(2*v) - v
			}
		}

		// Diamond pass: edge midpoints from their neighbors. Border points
		// have one neighbor off-grid and average the reachable three.
		for y := 0; y < size; y += half {
			for x := (y + half) % step; x < size; x += step {
				var sum, n T
				if y >= half {
					sum += *at(x, y-half)
					n++
				}
				if x >= half {
					sum += *at(x-half, y)
					n++
				}
				if x+half < size {
					sum += *at(x+half, y)
					n++
				}
				if y+half < size {
					sum += *at(x, y+half)
					n++
				}
				*at(x, y) = sum/n + random(2*v) - v
			}
		}

		level++
	}

	return nil
}

// Wrap generates a size×size tileable heightfield where size = 2^n, n >= 2.
//
// The caller must seed the single top-left cell (0, 0) beforehand; it is
// never written. Neighbor lookup wraps modulo size in both axes, so every
// diamond point averages exactly 4 neighbors and four copies of the output
// tile edge-to-edge without a seam. Callback contract and traversal order
// are the same as NoWrap.
func Wrap[T Value](size int, random func(limit T) T, variance func(level int) T, at func(x, y int) *T) error {
	if size < 4 || !powerOfTwo(size) {
		return &InvalidSizeError{Size: size, Wrap: true}
	}

	mask := size - 1
	level := 0
	for step := size; step > 1; step /= 2 {
		half := step / 2
		v := variance(level)

		// Square pass. The lower-right corners may wrap around to row or
		// column zero.
		for y := half; y < size; y += step {
			for x := half; x < size; x += step {
				x1 := (x + half) & mask
				y1 := (y + half) & mask
				sum := *at(x-half, y-half) + *at(x1, y-half) +
					*at(x-half, y1) + *at(x1, y1)
				*at(x, y) = sum/4 + random(2*v) - v
			}
		}

		// Diamond pass: all four neighbors exist on the torus.
		for y := 0; y < size; y += half {
			for x := (y + half) % step; x < size; x += step {
				sum := *at(x, (y-half+size)&mask) +
					*at((x-half+size)&mask, y) +
					*at((x+half)&mask, y) +
					*at(x, (y+half)&mask)
				*at(x, y) = sum/4 + random(2*v) - v
			}
		}

		level++
	}

	return nil
}

func powerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
