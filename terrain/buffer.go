// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "io"

// Buffer run-length encodes bytes losslessly.
// Each run is a value byte followed by its count - 1.
type Buffer struct {
	buf []byte
	off int // Read position
}

// Reset replaces the contents with buf and rewinds the read position.
func (buffer *Buffer) Reset(buf []byte) {
	buffer.buf = buf
	buffer.off = 0
}

// WriteByte appends one sample, extending the last run if possible.
func (buffer *Buffer) WriteByte(b byte) error {
	buf := buffer.buf

	const maxCountMinusOne = 255
	end := len(buf) - 2
	if end >= 0 && buf[end] == b && buf[end+1] < maxCountMinusOne {
		// Add 1 to count
		buf[end+1]++
	} else {
		// Start new run
		buf = append(buf, b, 0)
	}

	buffer.buf = buf
	return nil
}

func (buffer *Buffer) Write(buf []byte) (int, error) {
	for _, b := range buf {
		_ = buffer.WriteByte(b)
	}
	return len(buf), nil
}

// readByte consumes one sample, destructively decrementing the run count.
func (buffer *Buffer) readByte() (b byte, more bool) {
	b = buffer.buf[buffer.off]

	if buffer.buf[buffer.off+1] > 0 {
		buffer.buf[buffer.off+1]--
		more = true
	} else {
		buffer.off += 2
		more = buffer.off < len(buffer.buf)
	}

	return
}

func (buffer *Buffer) Read(buf []byte) (int, error) {
	more := buffer.off < len(buffer.buf)
	i := 0

	for ; i < len(buf) && more; i++ {
		buf[i], more = buffer.readByte()
	}

	if i == 0 {
		return 0, io.EOF
	}

	return i, nil
}

// Grow makes space for about n samples.
func (buffer *Buffer) Grow(n int) {
	compressed := n / 4
	if old := buffer.Buffer(); len(old) < compressed {
		buf := make([]byte, len(old), len(old)+compressed)
		copy(buf, old)
		buffer.buf = buf
	}
}

// Buffer returns the unread encoded bytes.
func (buffer *Buffer) Buffer() []byte {
	return buffer.buf[buffer.off:]
}
