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

// Package name decodes the sfnt "name" table: human-readable strings
// (family, subfamily, full name, ...) keyed by platform and language.
package name

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"

	"github.com/voss-go/truetype/cursor"
	"github.com/voss-go/truetype/font"
)

const (
	platformUnicode   = 0
	platformMacintosh = 1
	platformWindows   = 3
)

// windowsUSEnglish is the Microsoft platform language id for US English,
// used to pick a default record when several languages are present.
const windowsUSEnglish = 0x0409

// msLanguageTag maps the handful of Microsoft platform language ids this
// package recognizes to a BCP 47 tag. Unrecognized ids decode to
// language.Und rather than growing this table to cover the full LCID
// list, which no operation here needs.
var msLanguageTag = map[uint16]language.Tag{
	0x0409: language.AmericanEnglish,
	0x0809: language.BritishEnglish,
	0x0407: language.German,
	0x040c: language.French,
	0x0410: language.Italian,
	0x0411: language.Japanese,
}

// Well-known name IDs; see the OpenType "name" table specification.
const (
	Copyright      = 0
	Family         = 1
	Subfamily      = 2
	FullName       = 4
	Version        = 5
	PostScriptName = 6
)

// Record is one entry of the name table: a human-readable string tagged
// by platform, encoding, language and semantic id.
type Record struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Value      string
	Lang       language.Tag
}

// Table is the decoded "name" table: every record the font carries, in
// file order.
type Table struct {
	Records []Record
}

// Find returns the value of the first record with the given name id,
// preferring a Windows record whose language matches preferred, then any
// Windows/US-English record, then any Windows record, then any
// Macintosh record.
func (t *Table) Find(nameID uint16, preferred language.Tag) (string, bool) {
	base, _ := preferred.Base()
	var langMatch, winUSEnglish, winAny, macAny *Record
	for i := range t.Records {
		r := &t.Records[i]
		if r.NameID != nameID {
			continue
		}
		if r.PlatformID == platformWindows {
			if rb, _ := r.Lang.Base(); langMatch == nil && rb == base {
				langMatch = r
			}
			if r.LanguageID == windowsUSEnglish && winUSEnglish == nil {
				winUSEnglish = r
			}
			if winAny == nil {
				winAny = r
			}
		} else if r.PlatformID == platformMacintosh && macAny == nil {
			macAny = r
		}
	}
	switch {
	case langMatch != nil:
		return langMatch.Value, true
	case winUSEnglish != nil:
		return winUSEnglish.Value, true
	case winAny != nil:
		return winAny.Value, true
	case macAny != nil:
		return macAny.Value, true
	default:
		return "", false
	}
}

// Read decodes the name table at tableOffset: the header, the record
// directory, and each record's string from the storage area that follows
// the directory. Table version 1 is accepted, but its language-tag
// records are not decoded.
func Read(c *cursor.Cursor, tableOffset uint32) (*Table, error) {
	if err := c.SeekFromStart(tableOffset); err != nil {
		return nil, err
	}
	version, err := c.U16()
	if err != nil {
		return nil, err
	}
	if version > 1 {
		return nil, &font.InvalidFontError{SubSystem: "sfnt/name", Reason: "unsupported table version"}
	}
	count, err := c.U16()
	if err != nil {
		return nil, err
	}
	storageOffset, err := c.U16()
	if err != nil {
		return nil, err
	}

	type rawRecord struct {
		platformID, encodingID, languageID, nameID, length, offset uint16
	}
	raw := make([]rawRecord, count)
	for i := range raw {
		platformID, err := c.U16()
		if err != nil {
			return nil, err
		}
		encodingID, err := c.U16()
		if err != nil {
			return nil, err
		}
		languageID, err := c.U16()
		if err != nil {
			return nil, err
		}
		nameID, err := c.U16()
		if err != nil {
			return nil, err
		}
		length, err := c.U16()
		if err != nil {
			return nil, err
		}
		offset, err := c.U16()
		if err != nil {
			return nil, err
		}
		raw[i] = rawRecord{platformID, encodingID, languageID, nameID, length, offset}
	}

	records := make([]Record, 0, count)
	for _, r := range raw {
		if err := c.SeekFromStart(tableOffset + uint32(storageOffset) + uint32(r.offset)); err != nil {
			return nil, err
		}
		var value string
		var lang language.Tag
		switch r.platformID {
		case platformUnicode, platformWindows:
			value, err = c.UTF16BEString(int(r.length))
			if err != nil {
				return nil, err
			}
			lang = msLanguageTag[r.languageID]
		case platformMacintosh:
			strBytes, err := c.Bytes(int(r.length))
			if err != nil {
				return nil, err
			}
			decoded, err := charmap.Macintosh.NewDecoder().Bytes(strBytes)
			if err != nil {
				continue
			}
			value = string(decoded)
			lang = language.Und
		default:
			continue
		}

		records = append(records, Record{
			PlatformID: r.platformID,
			EncodingID: r.encodingID,
			LanguageID: r.languageID,
			NameID:     r.nameID,
			Value:      value,
			Lang:       lang,
		})
	}

	return &Table{Records: records}, nil
}
