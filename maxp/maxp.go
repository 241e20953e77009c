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

// Package maxp decodes the sfnt "maxp" table.
package maxp

import (
	"github.com/voss-go/truetype/cursor"
	"github.com/voss-go/truetype/font"
)

// Info holds the maxp fields this parser needs.
type Info struct {
	NumGlyphs int
}

// Read decodes the maxp table at the cursor's current position. Only
// numGlyphs is consumed into Info; the remaining 13 version-1.0 fields
// (maxPoints, maxContours, ...) are read and discarded in file order,
// since no downstream decoder in this package needs them but a glyf/loca
// font always carries a version-1.0 table whose bytes must still be
// walked past.
func Read(c *cursor.Cursor) (*Info, error) {
	versionMajor, err := c.U16()
	if err != nil {
		return nil, err
	}
	versionMinor, err := c.U16()
	if err != nil {
		return nil, err
	}
	version := uint32(versionMajor)<<16 | uint32(versionMinor)
	if version != 0x00005000 && version != 0x00010000 {
		return nil, &font.InvalidFontError{SubSystem: "sfnt/maxp", Reason: "unsupported table version"}
	}

	numGlyphs, err := c.U16()
	if err != nil {
		return nil, err
	}
	if numGlyphs == 0 {
		return nil, &font.InvalidFontError{SubSystem: "sfnt/maxp", Reason: "zero glyphs"}
	}

	if version == 0x00010000 {
		// maxPoints, maxContours, maxCompositePoints, maxCompositeContours,
		// maxZones, maxTwilightPoints, maxStorage, maxFunctionDefs,
		// maxInstructionDefs, maxStackElements, maxSizeOfInstructions,
		// maxComponentElements, maxComponentDepth.
		for i := 0; i < 13; i++ {
			if _, err := c.U16(); err != nil {
				return nil, err
			}
		}
	}

	return &Info{NumGlyphs: int(numGlyphs)}, nil
}
