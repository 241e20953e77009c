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
	"github.com/voss-go/truetype/font"
)

// ErrOutOfBounds is returned when decoding runs past the end of the font
// data. It is the cursor package's sentinel, re-exported for callers of
// the top-level API.
var ErrOutOfBounds = cursor.ErrOutOfBounds

// The error types returned by every decoder in this module are defined
// once in package font (imported by every leaf decoder as well as this
// package) and re-exported here under their sfnt.* names so that callers
// of the top-level Font API never need to import font directly.
type (
	InvalidFontError           = font.InvalidFontError
	NotSupportedError          = font.NotSupportedError
	ErrNoTable                 = font.ErrNoTable
	UnknownGlyphError          = font.UnknownGlyphError
	UnsupportedCmapFormatError = font.UnsupportedCmapFormatError
	NoUnicodeCmapError         = font.NoUnicodeCmapError
)

// IsMissing returns true if err indicates a missing sfnt table.
func IsMissing(err error) bool { return font.IsMissing(err) }

// IsUnsupported returns true if err is a NotSupportedError.
func IsUnsupported(err error) bool { return font.IsUnsupported(err) }
