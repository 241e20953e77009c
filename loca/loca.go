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

// Package loca decodes the sfnt "loca" table into a dense glyph-id to
// byte-offset mapping.
package loca

import (
	"github.com/voss-go/truetype/cursor"
	"github.com/voss-go/truetype/font"
)

// Offset locates one glyph's entry in the glyf table.
type Offset struct {
	Value   uint32
	IsEmpty bool
}

// Read decodes numGlyphs+1 loca entries from the cursor's current
// position. indexToLocFormat 0 means each entry is a 16-bit value scaled
// by 2; 1 means each entry is a raw 32-bit offset. A glyph is empty iff
// its entry equals the following one.
func Read(c *cursor.Cursor, numGlyphs int, indexToLocFormat int16) ([]Offset, error) {
	n := numGlyphs + 1
	raw := make([]uint32, n)

	switch indexToLocFormat {
	case 0:
		for i := 0; i < n; i++ {
			v, err := c.U16()
			if err != nil {
				return nil, err
			}
			raw[i] = uint32(v) * 2
		}
	case 1:
		for i := 0; i < n; i++ {
			v, err := c.U32()
			if err != nil {
				return nil, err
			}
			raw[i] = v
		}
	default:
		return nil, &font.InvalidFontError{SubSystem: "sfnt/loca", Reason: "illegal indexToLocFormat"}
	}

	offsets := make([]Offset, numGlyphs)
	for i := 0; i < numGlyphs; i++ {
		if raw[i] > raw[i+1] {
			return nil, &font.InvalidFontError{SubSystem: "sfnt/loca", Reason: "offsets not monotonic"}
		}
		offsets[i] = Offset{Value: raw[i], IsEmpty: raw[i] == raw[i+1]}
	}
	return offsets, nil
}
