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

package name

import (
	"testing"
	"unicode/utf16"

	"golang.org/x/text/language"

	"github.com/voss-go/truetype/cursor"
)

type rawRecordFixture struct {
	platformID, encodingID, languageID, nameID uint16
	data                                       []byte
}

func utf16beBytes(s string) []byte {
	var out []byte
	for _, u := range utf16.Encode([]rune(s)) {
		out = append(out, byte(u>>8), byte(u))
	}
	return out
}

func buildNameTable(recs []rawRecordFixture) []byte {
	var buf []byte
	u16 := func(v uint16) { buf = append(buf, byte(v>>8), byte(v)) }

	u16(0) // version
	u16(uint16(len(recs)))
	storageOffset := uint16(6 + 12*len(recs))
	u16(storageOffset)

	var storage []byte
	for _, r := range recs {
		u16(r.platformID)
		u16(r.encodingID)
		u16(r.languageID)
		u16(r.nameID)
		u16(uint16(len(r.data)))
		u16(uint16(len(storage)))
		storage = append(storage, r.data...)
	}
	return append(buf, storage...)
}

func TestReadWindowsRecordDecodesUTF16BE(t *testing.T) {
	data := buildNameTable([]rawRecordFixture{
		{platformID: 3, encodingID: 1, languageID: 0x0409, nameID: Family, data: utf16beBytes("Test Sans")},
	})
	table, err := Read(cursor.NewBuffer(data), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(table.Records))
	}
	r := table.Records[0]
	if r.Value != "Test Sans" {
		t.Errorf("Value: got %q, want %q", r.Value, "Test Sans")
	}
	if r.Lang != language.AmericanEnglish {
		t.Errorf("Lang: got %v, want AmericanEnglish", r.Lang)
	}
}

func TestReadMacintoshRecordDecodesMacRoman(t *testing.T) {
	data := buildNameTable([]rawRecordFixture{
		{platformID: 1, encodingID: 0, languageID: 0, nameID: Family, data: []byte("Test Sans")},
	})
	table, err := Read(cursor.NewBuffer(data), 0)
	if err != nil {
		t.Fatal(err)
	}
	r := table.Records[0]
	if r.Value != "Test Sans" {
		t.Errorf("Value: got %q, want %q", r.Value, "Test Sans")
	}
	if r.Lang != language.Und {
		t.Errorf("Lang: got %v, want Und", r.Lang)
	}
}

func TestReadSkipsUnknownPlatform(t *testing.T) {
	data := buildNameTable([]rawRecordFixture{
		{platformID: 2, encodingID: 0, languageID: 0, nameID: Family, data: []byte("ISO")},
		{platformID: 3, encodingID: 1, languageID: 0x0409, nameID: Family, data: utf16beBytes("Kept")},
	})
	table, err := Read(cursor.NewBuffer(data), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Records) != 1 || table.Records[0].Value != "Kept" {
		t.Fatalf("expected only the Windows record to survive, got %+v", table.Records)
	}
}

func TestFindPrefersWindowsLanguageMatch(t *testing.T) {
	table := &Table{Records: []Record{
		{PlatformID: 1, NameID: Family, Value: "Mac Fallback", Lang: language.Und},
		{PlatformID: 3, LanguageID: 0x0407, NameID: Family, Value: "German", Lang: language.German},
		{PlatformID: 3, LanguageID: 0x0409, NameID: Family, Value: "American", Lang: language.AmericanEnglish},
	}}

	got, ok := table.Find(Family, language.AmericanEnglish)
	if !ok || got != "American" {
		t.Errorf("Find(en-US): got (%q, %v), want (American, true)", got, ok)
	}

	got, ok = table.Find(Family, language.German)
	if !ok || got != "German" {
		t.Errorf("Find(de): got (%q, %v), want (German, true)", got, ok)
	}
}

func TestFindFallsBackToMacintosh(t *testing.T) {
	table := &Table{Records: []Record{
		{PlatformID: 1, NameID: Family, Value: "Mac Only", Lang: language.Und},
	}}
	got, ok := table.Find(Family, language.AmericanEnglish)
	if !ok || got != "Mac Only" {
		t.Errorf("Find: got (%q, %v), want (Mac Only, true)", got, ok)
	}
}

func TestFindMissingNameIDReturnsFalse(t *testing.T) {
	table := &Table{Records: []Record{
		{PlatformID: 3, NameID: Family, Value: "Something", Lang: language.AmericanEnglish},
	}}
	if _, ok := table.Find(FullName, language.AmericanEnglish); ok {
		t.Error("expected no match for an absent name id")
	}
}
