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

package head

import (
	"testing"

	"github.com/voss-go/truetype/cursor"
)

func buildHead(magic uint32, unitsPerEm uint16, indexToLocFormat int16) []byte {
	var buf []byte
	u16 := func(v uint16) { buf = append(buf, byte(v>>8), byte(v)) }
	u32 := func(v uint32) { buf = append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v)) }
	i16 := func(v int16) { u16(uint16(v)) }
	i64 := func(v int64) {
		uv := uint64(v)
		for i := 7; i >= 0; i-- {
			buf = append(buf, byte(uv>>(8*i)))
		}
	}

	u16(1) // version major
	u16(0) // version minor
	u16(1) // fontRevision major
	u16(0) // fontRevision minor
	u32(0) // checksumAdjustment
	u32(magic)
	u16(0) // flags
	u16(unitsPerEm)
	i64(0)    // created
	i64(0)    // modified
	i16(10)   // xMin
	i16(-5)   // yMin
	i16(900)  // xMax
	i16(1000) // yMax
	u16(0)    // macStyle
	u16(9)    // lowestRecPPEM
	i16(2)    // fontDirectionHint
	i16(indexToLocFormat)
	i16(0) // glyphDataFormat
	return buf
}

func TestReadHead(t *testing.T) {
	data := buildHead(0x5F0F3CF5, 2048, 1)
	info, err := Read(cursor.NewBuffer(data))
	if err != nil {
		t.Fatal(err)
	}
	if info.UnitsPerEm != 2048 {
		t.Errorf("UnitsPerEm: got %d, want 2048", info.UnitsPerEm)
	}
	if info.IndexToLocFormat != 1 {
		t.Errorf("IndexToLocFormat: got %d, want 1", info.IndexToLocFormat)
	}
	if info.XMin != 10 || info.YMin != -5 || info.XMax != 900 || info.YMax != 1000 {
		t.Errorf("bounding box: got %+v", info)
	}
}

func TestReadHeadBadMagic(t *testing.T) {
	data := buildHead(0x12345678, 1000, 0)
	if _, err := Read(cursor.NewBuffer(data)); err == nil {
		t.Fatal("expected an error for a bad magic number")
	}
}

func TestReadHeadIllegalLocaFormat(t *testing.T) {
	data := buildHead(0x5F0F3CF5, 1000, 2)
	if _, err := Read(cursor.NewBuffer(data)); err == nil {
		t.Fatal("expected an error for an illegal indexToLocFormat")
	}
}
