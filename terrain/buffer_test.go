// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestBuffer_Write(t *testing.T) {
	const n = 1024
	var buffer Buffer

	_, _ = buffer.Write(make([]byte, n))

	// 1024 equal samples fit in ceil(1024/256) runs of 2 bytes each.
	if buf := buffer.Buffer(); len(buf) != 8 {
		t.Error("Buffer.Write(make([]byte, 1024)) expected", 8, "got", len(buf))
		t.Error(buf)
	}
}

func TestBuffer_Read(t *testing.T) {
	const n = 1024
	var buffer Buffer

	input := make([]byte, n)
	for i := range input {
		input[i] = byte(rand.Intn(4)) * 60
	}

	_, _ = buffer.Write(input)

	output := make([]byte, n*2)
	r, _ := buffer.Read(output)
	output = output[:r]

	if !bytes.Equal(input, output) {
		t.Error("Buffer.Read expected", len(input), "got", len(output), "\ninput:", input, "\noutput:", output)
	}
}

func TestDataDecode(t *testing.T) {
	input := []byte{5, 5, 5, 9, 0, 0, 0, 0, 255}

	data := NewData()
	defer data.Pool()

	var buffer Buffer
	buffer.Reset(data.Data)
	_, _ = buffer.Write(input)

	data.Data = buffer.Buffer()
	data.Stride = 3
	data.Length = len(input)

	decoded, err := data.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, input) {
		t.Error("Decode expected", input, "got", decoded)
	}

	// Decode reads a copy, so it must be repeatable.
	again, err := data.Decode()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, input) {
		t.Error("second Decode expected", input, "got", again)
	}
}
