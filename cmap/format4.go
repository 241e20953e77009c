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

package cmap

import (
	"github.com/voss-go/truetype/cursor"
	"github.com/voss-go/truetype/font"
)

// Segment is one entry of a format-4 cmap subtable.
type Segment struct {
	Index         int
	StartCode     uint16
	EndCode       uint16
	IDDelta       uint16
	IDRangeOffset uint16
}

// Format4 is a parsed format-4 cmap subtable descriptor. It holds no
// segment data in memory: Resolve walks the endCode/startCode/idDelta/
// idRangeOffset arrays in place on the underlying cursor, using the same
// searchRange/entrySelector binary search the subtable format is built
// around.
type Format4 struct {
	c             *cursor.Cursor
	segCount      int
	searchRange   uint16
	entrySelector uint16
	endCodeOffset uint32
}

// ReadFormat4 reads a format-4 subtable's fixed header at subtableOffset
// and returns a descriptor ready for Resolve and Segments.
func ReadFormat4(c *cursor.Cursor, subtableOffset uint32) (*Format4, error) {
	if err := c.SeekFromStart(subtableOffset); err != nil {
		return nil, err
	}
	format, err := c.U16()
	if err != nil {
		return nil, err
	}
	if format != 4 {
		return nil, &font.UnsupportedCmapFormatError{Format: format}
	}
	if _, err := c.U16(); err != nil { // length
		return nil, err
	}
	if _, err := c.U16(); err != nil { // language
		return nil, err
	}
	segCountX2, err := c.U16()
	if err != nil {
		return nil, err
	}
	searchRange, err := c.U16()
	if err != nil {
		return nil, err
	}
	entrySelector, err := c.U16()
	if err != nil {
		return nil, err
	}
	if _, err := c.U16(); err != nil { // rangeShift
		return nil, err
	}

	// The cursor now sits on endCode[0]; the reserved pad word between the
	// endCode and startCode arrays must be zero.
	pad, err := c.PeekU16At(int32(segCountX2))
	if err != nil {
		return nil, err
	}
	if pad != 0 {
		return nil, &font.InvalidFontError{SubSystem: "sfnt/cmap", Reason: "nonzero reservedPad"}
	}

	return &Format4{
		c:             c,
		segCount:      int(segCountX2 / 2),
		searchRange:   searchRange,
		entrySelector: entrySelector,
		endCodeOffset: subtableOffset + 14,
	}, nil
}

// Segments reads all four parallel arrays and zips them by index. Unlike
// Resolve, full enumeration has no reason to avoid materializing them.
func (f *Format4) Segments() ([]Segment, error) {
	c := f.c
	if err := c.SeekFromStart(f.endCodeOffset); err != nil {
		return nil, err
	}

	endCodes := make([]uint16, f.segCount)
	for i := range endCodes {
		v, err := c.U16()
		if err != nil {
			return nil, err
		}
		endCodes[i] = v
	}
	if _, err := c.U16(); err != nil { // reservedPad
		return nil, err
	}
	startCodes := make([]uint16, f.segCount)
	for i := range startCodes {
		v, err := c.U16()
		if err != nil {
			return nil, err
		}
		startCodes[i] = v
	}
	idDeltas := make([]uint16, f.segCount)
	for i := range idDeltas {
		v, err := c.U16()
		if err != nil {
			return nil, err
		}
		idDeltas[i] = v
	}
	idRangeOffsets := make([]uint16, f.segCount)
	for i := range idRangeOffsets {
		v, err := c.U16()
		if err != nil {
			return nil, err
		}
		idRangeOffsets[i] = v
	}

	segs := make([]Segment, f.segCount)
	for i := range segs {
		segs[i] = Segment{
			Index:         i,
			StartCode:     startCodes[i],
			EndCode:       endCodes[i],
			IDDelta:       idDeltas[i],
			IDRangeOffset: idRangeOffsets[i],
		}
	}
	return segs, nil
}

// Resolve looks up the glyph id for a character code, using the standard
// OpenType cmap format-4 search driven by searchRange/entrySelector. The
// first probe reads endCode[searchRange/2-1]: a code above that endCode is
// found by a linear scan over the later segments, a code at or below it by
// a binary search over endCode[0..searchRange/2-1], and a binary search
// that runs out of entrySelector steps without a hit yields glyph 0. The
// cursor is repositioned in place rather than indexing into in-memory
// slices; segment 0 gets no special-cased early exit, since the OpenType
// format requires none.
func (f *Format4) Resolve(code uint16) (uint16, error) {
	c := f.c
	segCountX2 := int32(f.segCount) * 2

	if err := c.SeekFromStart(f.endCodeOffset); err != nil {
		return 0, err
	}

	searchRange := int32(f.searchRange)
	// The initial probe lands on index searchRange/2-1, i.e. byte offset
	// searchRange-2 from endCode[0]: searchRange/2 is the largest power of
	// two <= segCount, so this index is always in range even when segCount
	// itself is an exact power of two (where probing at +searchRange
	// directly would land past the last entry), and every halving step of
	// the binary search below stays within endCode[0..searchRange/2-1].
	endCode, err := c.PeekU16At(searchRange - 2)
	if err != nil {
		return 0, err
	}
	if code > endCode {
		return f.sequentialSearch(code)
	}
	return f.binarySearch(code, endCode, searchRange, f.entrySelector, segCountX2)
}

func (f *Format4) sequentialSearch(code uint16) (uint16, error) {
	c := f.c
	segCountX2 := int32(f.segCount) * 2
	for {
		nextEndCode, err := c.U16()
		if err != nil {
			return 0, err
		}
		if nextEndCode >= code {
			if err := c.SeekFromCurrent(-2); err != nil {
				return 0, err
			}
			startCode, err := c.PeekU16At(segCountX2 + 2)
			if err != nil {
				return 0, err
			}
			if code < startCode {
				return 0, nil // falls in a gap between segments
			}
			return f.glyphIDFromStartCode(startCode, code, segCountX2)
		}
		if nextEndCode == 0xFFFF {
			return 0, nil
		}
	}
}

func (f *Format4) binarySearch(code, endCode uint16, searchRange int32, entrySelector uint16, segCountX2 int32) (uint16, error) {
	c := f.c
	startCode, err := c.PeekU16At(segCountX2 + 2)
	if err != nil {
		return 0, err
	}
	if code <= endCode && code >= startCode {
		return f.glyphIDFromStartCode(startCode, code, segCountX2)
	}
	if entrySelector == 0 {
		return 0, nil
	}

	searchRange >>= 1
	var jump int32
	if code < endCode {
		jump = -searchRange
	} else {
		jump = searchRange
	}

	if err := c.SeekFromCurrent(-(segCountX2 + 2)); err != nil { // back to endCode[mid]
		return 0, err
	}
	endCode, err = c.PeekU16At(jump)
	if err != nil {
		return 0, err
	}
	return f.binarySearch(code, endCode, searchRange, entrySelector-1, segCountX2)
}

// glyphIDFromStartCode computes the glyph id for a located segment. The
// cursor must be parked at that segment's startCode slot on entry.
func (f *Format4) glyphIDFromStartCode(startCode, code uint16, segCountX2 int32) (uint16, error) {
	c := f.c
	idDelta, err := c.PeekU16At(segCountX2)
	if err != nil {
		return 0, err
	}
	idRangeOffset, err := c.PeekU16At(segCountX2)
	if err != nil {
		return 0, err
	}
	if idRangeOffset == 0 {
		return idDelta + code, nil // wraps mod 2^16 as uint16 arithmetic
	}

	// Per the OpenType spec, the indirection address is relative to the
	// address of the idRangeOffset slot itself, where the cursor now sits
	// (PeekU16At parks at the slot it reads, rather than restoring the
	// cursor to where it started).
	addr := c.Tell()
	target := addr + uint32(idRangeOffset) + 2*uint32(code-startCode)
	if err := c.SeekFromStart(target); err != nil {
		return 0, err
	}
	return c.U16()
}
