// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"bytes"
	"strings"
	"testing"
)

func TestGridAccess(t *testing.T) {
	g := NewGrid(5)

	*g.At(3, 2) = 42
	if v := g.Values()[g.Index(3, 2)]; v != 42 {
		t.Error("expected 42, got", v)
	}

	if x, y := g.Wrap(-1, 7); x != 4 || y != 2 {
		t.Errorf("Wrap(-1, 7) expected (4, 2), got (%d, %d)", x, y)
	}
}

func TestGridSeeding(t *testing.T) {
	g := NewGrid(5)
	g.SeedCorners(128)

	for _, i := range []int{0, 4} {
		for _, j := range []int{0, 4} {
			if v := *g.At(i, j); v != 128 {
				t.Errorf("corner (%d, %d) expected 128, got %v", i, j, v)
			}
		}
	}

	g = NewGrid(4)
	g.SeedOrigin(77)
	if v := *g.At(0, 0); v != 77 {
		t.Error("origin expected 77, got", v)
	}
}

func TestGridBytes(t *testing.T) {
	g := NewGrid(2)
	*g.At(0, 0) = -5
	*g.At(1, 0) = 300
	*g.At(0, 1) = 128
	*g.At(1, 1) = 0.5

	if buf := g.Bytes(); !bytes.Equal(buf, []byte{0, 255, 128, 0}) {
		t.Error("Bytes expected [0 255 128 0], got", buf)
	}
}

func TestWritePGM(t *testing.T) {
	var out strings.Builder
	if err := WritePGM(&out, []byte{0, 128, 255, 7}, 2, 2); err != nil {
		t.Fatal(err)
	}

	expected := "P2 2 2 255\n0\n128\n255\n7\n"
	if out.String() != expected {
		t.Errorf("WritePGM expected %q, got %q", expected, out.String())
	}

	if err := WritePGM(&out, []byte{1, 2}, 2, 2); err == nil {
		t.Error("WritePGM expected an error for a short heightmap")
	}
}
