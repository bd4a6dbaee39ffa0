// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WritePGM writes a heightmap as a plain-text Netpbm greyscale image:
// a "P2 <width> <height> 255" header followed by one 8-bit sample per
// line in row-major order.
func WritePGM(w io.Writer, heightmap []byte, width, height int) error {
	if len(heightmap) < width*height {
		return fmt.Errorf("terrain: heightmap has %d samples, need %d", len(heightmap), width*height)
	}

	// bufio errors are sticky, so Flush reports the first failure.
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P2 %d %d 255\n", width, height)

	for _, sample := range heightmap[:width*height] {
		bw.WriteString(strconv.Itoa(int(sample)))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
