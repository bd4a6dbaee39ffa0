// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"fmt"
	"sync"
)

// Data describes a rectangular excerpt of a heightmap.
// Its samples are run-length encoded by Buffer.
type Data struct {
	X      int    `json:"x"`      // X is the left edge in terrain space.
	Y      int    `json:"y"`      // Y is the top edge in terrain space.
	Data   []byte `json:"data"`   // Data is the encoded heightmap.
	Stride int    `json:"stride"` // Stride is the width of the region.
	Length int    `json:"length"` // Length is the decoded length for faster reading.
}

var dataPool = sync.Pool{
	New: func() interface{} {
		return &Data{
			Data: make([]byte, 0, 2048),
		}
	},
}

func NewData() *Data {
	return dataPool.Get().(*Data)
}

func (data *Data) Pool() {
	*data = Data{
		Data: data.Data[:0],
	}
	dataPool.Put(data)
}

// Decode expands the run-length encoding into Length samples.
func (data *Data) Decode() ([]byte, error) {
	buf := make([]byte, data.Length)
	if data.Length == 0 {
		return buf, nil
	}

	encoded := make([]byte, len(data.Data))
	copy(encoded, data.Data) // Buffer reads destructively

	var buffer Buffer
	buffer.Reset(encoded)

	n, err := buffer.Read(buf)
	if err != nil {
		return nil, err
	}
	if n != data.Length {
		return nil, fmt.Errorf("terrain: decoded %d of %d samples", n, data.Length)
	}

	return buf, nil
}
