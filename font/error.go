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

// Package font holds the error vocabulary shared by every sfnt table
// decoder. It sits below the root package so that leaf decoders (head,
// hmtx, loca, cmap, glyf, ...) and the top-level Font assembler can both
// return the same error types without an import cycle.
package font

import "fmt"

// InvalidFontError indicates a structural problem with font data: a bad
// magic number, an illegal indexToLocFormat, a malformed cmap subtable,
// and similar.
type InvalidFontError struct {
	SubSystem string
	Reason    string
}

func (err *InvalidFontError) Error() string {
	return err.SubSystem + ": " + err.Reason
}

// NotSupportedError indicates that the font data is well-formed but uses a
// feature this package does not implement.
type NotSupportedError struct {
	SubSystem string
	Feature   string
}

func (err *NotSupportedError) Error() string {
	return err.SubSystem + ": " + err.Feature + " not supported"
}

// IsUnsupported returns true if err is a NotSupportedError.
func IsUnsupported(err error) bool {
	_, ok := err.(*NotSupportedError)
	return ok
}

// ErrNoTable indicates that a required table is missing from the font.
type ErrNoTable struct {
	Tag string
}

func (err *ErrNoTable) Error() string {
	return "missing " + err.Tag + " table in font"
}

// IsMissing returns true if err indicates a missing sfnt table.
func IsMissing(err error) bool {
	_, missing := err.(*ErrNoTable)
	return missing
}

// UnknownGlyphError indicates a request for a glyph id outside the range
// described by the font's maxp table.
type UnknownGlyphError struct {
	GlyphID uint16
}

func (err *UnknownGlyphError) Error() string {
	return fmt.Sprintf("sfnt: unknown glyph id %d", err.GlyphID)
}

// UnsupportedCmapFormatError indicates that a cmap subtable uses an
// encoding format this package cannot decode.
type UnsupportedCmapFormatError struct {
	Format uint16
}

func (err *UnsupportedCmapFormatError) Error() string {
	return fmt.Sprintf("sfnt/cmap: unsupported subtable format %d", err.Format)
}

// NoUnicodeCmapError indicates that none of a font's cmap subtables use a
// platform/encoding combination this package recognizes as Unicode.
type NoUnicodeCmapError struct{}

func (err *NoUnicodeCmapError) Error() string {
	return "sfnt/cmap: no unicode character map found"
}
