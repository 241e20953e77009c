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

package sfnt

import (
	"github.com/voss-go/truetype/cursor"
)

// TableRecord is one entry of the font directory, locating a table's bytes
// within the file.
type TableRecord struct {
	Offset uint32
	Length uint32
}

// Directory is the parsed offset subtable and table directory of an sfnt
// file.
type Directory struct {
	ScalerType uint32
	Tables     map[string]TableRecord
}

const (
	scalerTypeTrueType = 0x00010000
	scalerTypeCFF      = 0x4F54544F
	scalerTypeApple    = 0x74727565
)

// requiredTables are needed to reach glyph geometry; "name" is optional.
var requiredTables = []string{"head", "maxp", "hhea", "hmtx", "loca", "glyf", "cmap"}

// ReadDirectory reads the 12-byte offset subtable followed by numTables
// 16-byte table directory entries, starting at the cursor's current
// position (which must be the start of the file).
func ReadDirectory(c *cursor.Cursor) (*Directory, error) {
	scalerType, err := c.U32()
	if err != nil {
		return nil, err
	}
	if scalerType != scalerTypeTrueType && scalerType != scalerTypeCFF && scalerType != scalerTypeApple {
		return nil, &InvalidFontError{SubSystem: "sfnt/directory", Reason: "unrecognized scaler type"}
	}
	numTables, err := c.U16()
	if err != nil {
		return nil, err
	}
	// searchRange, entrySelector, rangeShift: unused by this parser.
	if _, err := c.U16(); err != nil {
		return nil, err
	}
	if _, err := c.U16(); err != nil {
		return nil, err
	}
	if _, err := c.U16(); err != nil {
		return nil, err
	}

	dir := &Directory{
		ScalerType: scalerType,
		Tables:     make(map[string]TableRecord, numTables),
	}
	for i := 0; i < int(numTables); i++ {
		tag, err := c.Tag()
		if err != nil {
			return nil, err
		}
		if _, err := c.U32(); err != nil { // checksum, not verified
			return nil, err
		}
		offset, err := c.U32()
		if err != nil {
			return nil, err
		}
		length, err := c.U32()
		if err != nil {
			return nil, err
		}
		dir.Tables[tag] = TableRecord{Offset: offset, Length: length}
	}
	return dir, nil
}

// Find looks up a table by tag, failing with ErrNoTable if absent.
func (d *Directory) Find(tag string) (TableRecord, error) {
	rec, ok := d.Tables[tag]
	if !ok {
		return TableRecord{}, &ErrNoTable{Tag: tag}
	}
	return rec, nil
}

// HasTables reports whether every given tag is present.
func (d *Directory) HasTables(tags ...string) bool {
	for _, tag := range tags {
		if _, ok := d.Tables[tag]; !ok {
			return false
		}
	}
	return true
}
