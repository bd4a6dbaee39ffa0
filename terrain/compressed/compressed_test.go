// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package compressed

import (
	"bytes"
	"testing"
)

// rampSource is a deterministic Source that also counts Generate calls.
type rampSource struct {
	calls int
}

func (s *rampSource) Generate(x, y, width, height int) []byte {
	s.calls++
	buf := make([]byte, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			buf[i+j*width] = byte((x + i) ^ (y + j))
		}
	}
	return buf
}

func TestTerrainAt(t *testing.T) {
	source := &rampSource{}
	terr := New(source)

	if v := terr.At(100, 200); v != byte(100^200) {
		t.Error("At(100, 200) expected", byte(100^200), "got", v)
	}

	// Out of range reads as zero without generating anything.
	calls := source.calls
	if v := terr.At(-1, 0); v != 0 {
		t.Error("At(-1, 0) expected 0, got", v)
	}
	if v := terr.At(0, Size); v != 0 {
		t.Error("At(0, Size) expected 0, got", v)
	}
	if source.calls != calls {
		t.Error("out of range reads generated chunks")
	}
}

func TestTerrainChunkCaching(t *testing.T) {
	source := &rampSource{}
	terr := New(source)

	// Repeated reads inside one chunk generate it once.
	for i := 0; i < 100; i++ {
		terr.At(i%chunkSize, i%chunkSize)
	}
	if source.calls != 1 {
		t.Error("expected 1 chunk generation, got", source.calls)
	}
	if terr.Chunks() != 1 {
		t.Error("expected 1 chunk, got", terr.Chunks())
	}

	terr.At(chunkSize, 0)
	if source.calls != 2 {
		t.Error("expected 2 chunk generations, got", source.calls)
	}
}

func TestTerrainRegion(t *testing.T) {
	source := &rampSource{}
	terr := New(source)

	data := terr.Region(60, 60, 10, 10)
	defer data.Pool()

	if data.Stride != 10 || data.Length != 100 {
		t.Fatalf("unexpected region shape: stride %d length %d", data.Stride, data.Length)
	}

	decoded, err := data.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if expected := terr.Generate(60, 60, 10, 10); !bytes.Equal(decoded, expected) {
		t.Error("region decode expected", expected, "got", decoded)
	}
}

func TestTerrainRegionClamped(t *testing.T) {
	terr := New(&rampSource{})

	data := terr.Region(Size-4, -3, 10, 10)
	defer data.Pool()

	if data.X != Size-4 || data.Y != 0 {
		t.Errorf("expected origin (%d, 0), got (%d, %d)", Size-4, data.X, data.Y)
	}
	if data.Stride != 4 || data.Length != 4*10 {
		t.Errorf("unexpected clamped shape: stride %d length %d", data.Stride, data.Length)
	}
}
