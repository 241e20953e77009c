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
	"testing"

	"github.com/voss-go/truetype/cursor"
)

func appendU16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

func appendU32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func appendTag(buf []byte, tag string) []byte {
	return append(buf, tag...)
}

func buildDirectory(scalerType uint32, records map[string][2]uint32) []byte {
	var buf []byte
	buf = appendU32(buf, scalerType)
	buf = appendU16(buf, uint16(len(records)))
	buf = appendU16(buf, 0) // searchRange
	buf = appendU16(buf, 0) // entrySelector
	buf = appendU16(buf, 0) // rangeShift
	for tag, ol := range records {
		buf = appendTag(buf, tag)
		buf = appendU32(buf, 0) // checksum
		buf = appendU32(buf, ol[0])
		buf = appendU32(buf, ol[1])
	}
	return buf
}

func TestReadDirectory(t *testing.T) {
	data := buildDirectory(0x00010000, map[string][2]uint32{
		"head": {100, 54},
		"loca": {200, 10},
	})
	dir, err := ReadDirectory(cursor.NewBuffer(data))
	if err != nil {
		t.Fatal(err)
	}
	rec, err := dir.Find("head")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Offset != 100 || rec.Length != 54 {
		t.Fatalf("head record: got %+v", rec)
	}
	if !dir.HasTables("head", "loca") {
		t.Fatal("expected both tables present")
	}
	if dir.HasTables("head", "glyf") {
		t.Fatal("glyf should not be present")
	}
}

func TestReadDirectoryMissingTable(t *testing.T) {
	data := buildDirectory(0x00010000, map[string][2]uint32{"head": {100, 54}})
	dir, err := ReadDirectory(cursor.NewBuffer(data))
	if err != nil {
		t.Fatal(err)
	}
	_, err = dir.Find("glyf")
	if !IsMissing(err) {
		t.Fatalf("expected a missing-table error, got %v", err)
	}
}

func TestReadDirectoryBadScalerType(t *testing.T) {
	data := buildDirectory(0xDEADBEEF, nil)
	_, err := ReadDirectory(cursor.NewBuffer(data))
	if err == nil {
		t.Fatal("expected an error for an unrecognized scaler type")
	}
}

func TestReadDirectoryAppleScalerType(t *testing.T) {
	data := buildDirectory(0x74727565, map[string][2]uint32{"head": {10, 54}})
	if _, err := ReadDirectory(cursor.NewBuffer(data)); err != nil {
		t.Fatalf("the 'true' scaler type must be accepted: %v", err)
	}
}
