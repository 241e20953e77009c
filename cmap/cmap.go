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

// Package cmap decodes the sfnt "cmap" table: the subtable directory and
// the format-4 segment mapping subtable.
package cmap

import (
	"github.com/voss-go/truetype/cursor"
	"github.com/voss-go/truetype/font"
)

const unicodePlatformID = 0

// SelectUnicodeSubtable reads the cmap table header (version, numTables)
// and its subtable record list at cmapOffset, and returns the absolute
// byte offset of the first subtable using the Unicode platform (0).
func SelectUnicodeSubtable(c *cursor.Cursor, cmapOffset uint32) (uint32, error) {
	if err := c.SeekFromStart(cmapOffset); err != nil {
		return 0, err
	}
	if _, err := c.U16(); err != nil { // version
		return 0, err
	}
	numSubtables, err := c.U16()
	if err != nil {
		return 0, err
	}
	for i := 0; i < int(numSubtables); i++ {
		platformID, err := c.U16()
		if err != nil {
			return 0, err
		}
		if _, err := c.U16(); err != nil { // encodingID
			return 0, err
		}
		offset, err := c.U32()
		if err != nil {
			return 0, err
		}
		if platformID == unicodePlatformID {
			return cmapOffset + offset, nil
		}
	}
	return 0, &font.NoUnicodeCmapError{}
}
