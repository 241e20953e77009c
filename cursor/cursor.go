// Copyright (C) 2026  The truetype authors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package cursor implements a position-tracking big-endian reader over a
// font file's bytes. It is the single point through which every table
// decoder in this module reads data, so that in-memory fonts ([]byte) and
// disk-backed fonts (io.ReaderAt) share one implementation of bounds
// checking and seeking.
package cursor

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf16"
)

// ErrOutOfBounds is returned whenever a read or seek would reach outside
// the bounds of the underlying data source.
var ErrOutOfBounds = errors.New("truetype: read out of bounds")

// backend abstracts the byte source a Cursor reads from.
type backend interface {
	// readAt fills buf from the given absolute offset. It returns
	// ErrOutOfBounds if the read would run past the end of the data.
	readAt(buf []byte, offset int64) error
	// size returns the total number of bytes available.
	size() int64
}

// Cursor is a stateful, position-tracking reader. It is not safe for
// concurrent use: callers that need to read from several positions at once
// should use Tell/SeekFromStart to save and restore a position, or open a
// second Cursor over the same backend.
type Cursor struct {
	b   backend
	pos int64
}

// NewBuffer returns a Cursor reading from an in-memory byte slice. The
// slice is not copied; the caller must not mutate it while the Cursor is
// in use.
func NewBuffer(data []byte) *Cursor {
	return &Cursor{b: bufferBackend(data)}
}

// NewReaderAt returns a Cursor reading from r, which spans exactly size
// bytes starting at its own offset 0.
func NewReaderAt(r io.ReaderAt, size int64) *Cursor {
	return &Cursor{b: readerAtBackend{r: r, n: size}}
}

// Len returns the total number of bytes available to the cursor.
func (c *Cursor) Len() int64 { return c.b.size() }

// Tell returns the cursor's current absolute position.
func (c *Cursor) Tell() uint32 { return uint32(c.pos) }

// SeekFromStart moves the cursor to an absolute byte offset.
func (c *Cursor) SeekFromStart(offset uint32) error {
	if int64(offset) > c.b.size() {
		return ErrOutOfBounds
	}
	c.pos = int64(offset)
	return nil
}

// SeekFromCurrent moves the cursor by delta bytes relative to its current
// position. delta may be negative, which is how the cmap format-4 binary
// search rewinds from the start-code array back to the end-code array.
func (c *Cursor) SeekFromCurrent(delta int32) error {
	next := c.pos + int64(delta)
	if next < 0 || next > c.b.size() {
		return ErrOutOfBounds
	}
	c.pos = next
	return nil
}

func (c *Cursor) read(buf []byte) error {
	if err := c.b.readAt(buf, c.pos); err != nil {
		return err
	}
	c.pos += int64(len(buf))
	return nil
}

// U8 reads an unsigned 8-bit integer and advances the cursor.
func (c *Cursor) U8() (uint8, error) {
	var buf [1]byte
	if err := c.read(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// I8 reads a signed 8-bit integer and advances the cursor.
func (c *Cursor) I8() (int8, error) {
	v, err := c.U8()
	return int8(v), err
}

// U16 reads a big-endian unsigned 16-bit integer and advances the cursor.
func (c *Cursor) U16() (uint16, error) {
	var buf [2]byte
	if err := c.read(buf[:]); err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// I16 reads a big-endian signed 16-bit integer and advances the cursor.
func (c *Cursor) I16() (int16, error) {
	v, err := c.U16()
	return int16(v), err
}

// U32 reads a big-endian unsigned 32-bit integer and advances the cursor.
func (c *Cursor) U32() (uint32, error) {
	var buf [4]byte
	if err := c.read(buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

// I32 reads a big-endian signed 32-bit integer and advances the cursor.
func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

// I64 reads a big-endian signed 64-bit integer and advances the cursor,
// used for the head table's Created/Modified timestamps.
func (c *Cursor) I64() (int64, error) {
	var buf [8]byte
	if err := c.read(buf[:]); err != nil {
		return 0, err
	}
	var v uint64
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}
	return int64(v), nil
}

// Tag reads a 4-byte ASCII table or feature tag.
func (c *Cursor) Tag() (string, error) {
	var buf [4]byte
	if err := c.read(buf[:]); err != nil {
		return "", err
	}
	return string(buf[:]), nil
}

// Bytes reads n raw bytes and advances the cursor. The returned slice is a
// copy; it is safe to retain after further reads.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := c.read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// UTF16BEString reads n bytes as big-endian UTF-16 and decodes them into a
// Go string, used by the name table to turn platform 0/3 string records
// into text.
func (c *Cursor) UTF16BEString(n int) (string, error) {
	raw, err := c.Bytes(n)
	if err != nil {
		return "", err
	}
	units := make([]uint16, n/2)
	for i := range units {
		units[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
	}
	return string(utf16.Decode(units)), nil
}

// PeekU16At reads a uint16 at delta bytes from the current position, then
// rewinds by two bytes so the cursor ends up parked at the start of the
// value just read rather than past it. This is the primitive that lets
// the cmap format-4 lookup walk the endCode/startCode/idDelta/
// idRangeOffset arrays in lock-step, landing on each slot it visits
// instead of ever materializing the arrays.
func (c *Cursor) PeekU16At(delta int32) (uint16, error) {
	if err := c.SeekFromCurrent(delta); err != nil {
		return 0, err
	}
	v, err := c.U16()
	if err != nil {
		return 0, err
	}
	if err := c.SeekFromCurrent(-2); err != nil {
		return 0, err
	}
	return v, nil
}

// bufferBackend is an in-memory backend over a []byte.
type bufferBackend []byte

func (b bufferBackend) readAt(buf []byte, offset int64) error {
	if offset < 0 || offset+int64(len(buf)) > int64(len(b)) {
		return ErrOutOfBounds
	}
	copy(buf, b[offset:])
	return nil
}

func (b bufferBackend) size() int64 { return int64(len(b)) }

// readerAtBackend is a disk-backed (or otherwise random-access) backend.
type readerAtBackend struct {
	r io.ReaderAt
	n int64
}

func (b readerAtBackend) readAt(buf []byte, offset int64) error {
	if offset < 0 || offset+int64(len(buf)) > b.n {
		return ErrOutOfBounds
	}
	if _, err := b.r.ReadAt(buf, offset); err != nil {
		if err == io.EOF {
			return ErrOutOfBounds
		}
		return fmt.Errorf("truetype: %w", err)
	}
	return nil
}

func (b readerAtBackend) size() int64 { return b.n }
