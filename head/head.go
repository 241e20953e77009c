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

// Package head decodes the sfnt "head" table.
package head

import (
	"github.com/voss-go/truetype/cursor"
	"github.com/voss-go/truetype/font"
)

const magicNumber = 0x5F0F3CF5

// Info holds the fields of the head table this parser cares about, plus
// the remaining fields decoded for completeness.
type Info struct {
	Version      uint32
	FontRevision uint32
	UnitsPerEm   uint16
	Created      int64
	Modified     int64
	XMin, YMin   int16
	XMax, YMax   int16
	MacStyle     uint16

	LowestRecPPEM     int16
	FontDirectionHint int16

	// IndexToLocFormat selects the loca table's element width: 0 for
	// 16-bit offsets (scaled by 2), 1 for 32-bit raw offsets.
	IndexToLocFormat int16
	GlyphDataFormat  int16
}

// Read decodes the 54-byte head table at the cursor's current position.
func Read(c *cursor.Cursor) (*Info, error) {
	versionMajor, err := c.U16()
	if err != nil {
		return nil, err
	}
	versionMinor, err := c.U16()
	if err != nil {
		return nil, err
	}
	revMajor, err := c.U16()
	if err != nil {
		return nil, err
	}
	revMinor, err := c.U16()
	if err != nil {
		return nil, err
	}
	if _, err := c.U32(); err != nil { // checksumAdjustment
		return nil, err
	}
	magic, err := c.U32()
	if err != nil {
		return nil, err
	}
	if magic != magicNumber {
		return nil, &font.InvalidFontError{SubSystem: "sfnt/head", Reason: "bad magic number"}
	}
	if _, err := c.U16(); err != nil { // flags
		return nil, err
	}
	unitsPerEm, err := c.U16()
	if err != nil {
		return nil, err
	}
	created, err := c.I64()
	if err != nil {
		return nil, err
	}
	modified, err := c.I64()
	if err != nil {
		return nil, err
	}
	xMin, err := c.I16()
	if err != nil {
		return nil, err
	}
	yMin, err := c.I16()
	if err != nil {
		return nil, err
	}
	xMax, err := c.I16()
	if err != nil {
		return nil, err
	}
	yMax, err := c.I16()
	if err != nil {
		return nil, err
	}
	macStyle, err := c.U16()
	if err != nil {
		return nil, err
	}
	lowestRecPPEM, err := c.I16()
	if err != nil {
		return nil, err
	}
	fontDirectionHint, err := c.I16()
	if err != nil {
		return nil, err
	}
	indexToLocFormat, err := c.I16()
	if err != nil {
		return nil, err
	}
	if indexToLocFormat != 0 && indexToLocFormat != 1 {
		return nil, &font.InvalidFontError{SubSystem: "sfnt/head", Reason: "illegal indexToLocFormat"}
	}
	glyphDataFormat, err := c.I16()
	if err != nil {
		return nil, err
	}

	return &Info{
		Version:           uint32(versionMajor)<<16 | uint32(versionMinor),
		FontRevision:      uint32(revMajor)<<16 | uint32(revMinor),
		UnitsPerEm:        unitsPerEm,
		Created:           created,
		Modified:          modified,
		XMin:              xMin,
		YMin:              yMin,
		XMax:              xMax,
		YMax:              yMax,
		MacStyle:          macStyle,
		LowestRecPPEM:     lowestRecPPEM,
		FontDirectionHint: fontDirectionHint,
		IndexToLocFormat:  indexToLocFormat,
		GlyphDataFormat:   glyphDataFormat,
	}, nil
}
