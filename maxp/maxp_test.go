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

package maxp

import (
	"testing"

	"github.com/voss-go/truetype/cursor"
)

func TestReadMaxp(t *testing.T) {
	var buf []byte
	u16 := func(v uint16) { buf = append(buf, byte(v>>8), byte(v)) }
	u16(1) // version major
	u16(0) // version minor
	u16(500)
	for i := 0; i < 13; i++ {
		u16(0)
	}

	info, err := Read(cursor.NewBuffer(buf))
	if err != nil {
		t.Fatal(err)
	}
	if info.NumGlyphs != 500 {
		t.Errorf("NumGlyphs: got %d, want 500", info.NumGlyphs)
	}
}

func TestReadMaxpZeroGlyphsInvalid(t *testing.T) {
	var buf []byte
	u16 := func(v uint16) { buf = append(buf, byte(v>>8), byte(v)) }
	u16(0)
	u16(0x5000)
	u16(0)
	if _, err := Read(cursor.NewBuffer(buf)); err == nil {
		t.Fatal("expected an error for zero glyphs")
	}
}

func TestReadMaxpUnsupportedVersion(t *testing.T) {
	var buf []byte
	u16 := func(v uint16) { buf = append(buf, byte(v>>8), byte(v)) }
	u16(0x0002)
	u16(0x0000)
	u16(10)
	if _, err := Read(cursor.NewBuffer(buf)); err == nil {
		t.Fatal("expected an error for an unsupported maxp version")
	}
}
