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
	"testing"

	"github.com/voss-go/truetype/cursor"
	"github.com/voss-go/truetype/font"
)

type subtableRec struct {
	platformID, encodingID uint16
	offset                 uint32
}

func buildCmapHeader(cmapStart uint32, recs []subtableRec) []byte {
	var buf []byte
	u16 := func(v uint16) { buf = append(buf, byte(v>>8), byte(v)) }
	u32 := func(v uint32) { buf = append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v)) }
	u16(0) // version
	u16(uint16(len(recs)))
	for _, r := range recs {
		u16(r.platformID)
		u16(r.encodingID)
		u32(r.offset)
	}
	return buf
}

func TestSelectUnicodeSubtablePrefersPlatformZero(t *testing.T) {
	data := buildCmapHeader(0, []subtableRec{
		{platformID: 1, encodingID: 0, offset: 100},
		{platformID: 0, encodingID: 3, offset: 200},
		{platformID: 3, encodingID: 1, offset: 300},
	})
	c := cursor.NewBuffer(append(data, make([]byte, 400)...))
	off, err := SelectUnicodeSubtable(c, 0)
	if err != nil {
		t.Fatal(err)
	}
	if off != 200 {
		t.Errorf("got offset %d, want 200", off)
	}
}

func TestSelectUnicodeSubtableNoneFound(t *testing.T) {
	data := buildCmapHeader(0, []subtableRec{
		{platformID: 1, encodingID: 0, offset: 100},
		{platformID: 3, encodingID: 1, offset: 300},
	})
	c := cursor.NewBuffer(data)
	_, err := SelectUnicodeSubtable(c, 0)
	if _, ok := err.(*font.NoUnicodeCmapError); !ok {
		t.Fatalf("expected NoUnicodeCmapError, got %v", err)
	}
}

func TestSelectUnicodeSubtableOffsetIsRelativeToCmapStart(t *testing.T) {
	// Header lives at absolute offset 16, so subtable offsets in its
	// records are relative to that, not to byte 0 of the file.
	header := buildCmapHeader(0, []subtableRec{{platformID: 0, encodingID: 3, offset: 50}})
	data := make([]byte, 16)
	data = append(data, header...)
	data = append(data, make([]byte, 100)...)
	off, err := SelectUnicodeSubtable(cursor.NewBuffer(data), 16)
	if err != nil {
		t.Fatal(err)
	}
	if off != 66 {
		t.Errorf("got %d, want 66 (16 + 50)", off)
	}
}
