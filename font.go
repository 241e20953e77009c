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

// Package sfnt parses TrueType-flavoured sfnt font files: the table
// directory, the metric and glyph-location tables, the Unicode cmap, and
// glyph outlines (both simple and composite).
package sfnt

import (
	"os"

	"golang.org/x/text/language"

	"github.com/voss-go/truetype/cmap"
	"github.com/voss-go/truetype/cursor"
	"github.com/voss-go/truetype/font"
	"github.com/voss-go/truetype/glyf"
	"github.com/voss-go/truetype/head"
	"github.com/voss-go/truetype/hhea"
	"github.com/voss-go/truetype/hmtx"
	"github.com/voss-go/truetype/loca"
	"github.com/voss-go/truetype/maxp"
	"github.com/voss-go/truetype/name"
)

// Font is a parsed sfnt font. All lookup structures (directory, loca,
// hmtx, head, maxp, the cmap subtable descriptor) are materialised during
// construction; per-glyph geometry is decoded lazily by GlyphFor and
// GlyphForCharCode and is never cached.
//
// A Font is not safe for concurrent use: GlyphFor seeks the underlying
// cursor, and interleaving two lookups on the same Font would corrupt
// that shared position state. Independent Fonts are independent.
type Font struct {
	dir  *Directory
	c    *cursor.Cursor
	head *head.Info

	numGlyphs   int
	locaOffsets []loca.Offset
	metrics     []hmtx.LongHorMetric

	glyfOffset uint32

	cmap4 *cmap.Format4

	names *name.Table
}

// Open opens the font file at path and parses it through positioned reads
// on the file handle, without loading the file into memory; the returned
// Font keeps the file open for the lifetime of glyph lookups. Font has no
// Close method and does not expose the file handle, and Open does not
// close the file when parsing fails.
func Open(path string) (*Font, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	info, err := fd.Stat()
	if err != nil {
		return nil, err
	}
	return parse(cursor.NewReaderAt(fd, info.Size()))
}

// Parse constructs a Font from an in-memory byte slice. The slice is not
// copied; the caller must not mutate it while the Font is in use.
func Parse(data []byte) (*Font, error) {
	return parse(cursor.NewBuffer(data))
}

func parse(c *cursor.Cursor) (*Font, error) {
	dir, err := ReadDirectory(c)
	if err != nil {
		return nil, err
	}
	for _, tag := range requiredTables {
		if _, err := dir.Find(tag); err != nil {
			return nil, err
		}
	}

	headInfo, err := readTable(c, dir, "head", head.Read)
	if err != nil {
		return nil, err
	}

	maxpInfo, err := readTable(c, dir, "maxp", maxp.Read)
	if err != nil {
		return nil, err
	}
	numGlyphs := maxpInfo.NumGlyphs

	hheaInfo, err := readTable(c, dir, "hhea", hhea.Read)
	if err != nil {
		return nil, err
	}

	hmtxRec, err := dir.Find("hmtx")
	if err != nil {
		return nil, err
	}
	if err := c.SeekFromStart(hmtxRec.Offset); err != nil {
		return nil, err
	}
	metrics, err := hmtx.Read(c, numGlyphs, int(hheaInfo.NumOfLongHorMetrics))
	if err != nil {
		return nil, err
	}

	locaRec, err := dir.Find("loca")
	if err != nil {
		return nil, err
	}
	if err := c.SeekFromStart(locaRec.Offset); err != nil {
		return nil, err
	}
	locaOffsets, err := loca.Read(c, numGlyphs, headInfo.IndexToLocFormat)
	if err != nil {
		return nil, err
	}

	glyfRec, err := dir.Find("glyf")
	if err != nil {
		return nil, err
	}

	cmapRec, err := dir.Find("cmap")
	if err != nil {
		return nil, err
	}
	subtableOffset, err := cmap.SelectUnicodeSubtable(c, cmapRec.Offset)
	if err != nil {
		return nil, err
	}
	cmap4, err := cmap.ReadFormat4(c, subtableOffset)
	if err != nil {
		return nil, err
	}

	var names *name.Table
	if nameRec, err := dir.Find("name"); err == nil {
		names, err = name.Read(c, nameRec.Offset)
		if err != nil {
			return nil, err
		}
	}

	return &Font{
		dir:         dir,
		c:           c,
		head:        headInfo,
		numGlyphs:   numGlyphs,
		locaOffsets: locaOffsets,
		metrics:     metrics,
		glyfOffset:  glyfRec.Offset,
		cmap4:       cmap4,
		names:       names,
	}, nil
}

// readTable seeks the cursor to tag's table and runs decode, a pattern
// shared by every fixed-layout header table (head, maxp, hhea).
func readTable[T any](c *cursor.Cursor, dir *Directory, tag string, decode func(*cursor.Cursor) (*T, error)) (*T, error) {
	rec, err := dir.Find(tag)
	if err != nil {
		return nil, err
	}
	if err := c.SeekFromStart(rec.Offset); err != nil {
		return nil, err
	}
	return decode(c)
}

// NumGlyphs is the number of glyphs described by the font's maxp table.
func (f *Font) NumGlyphs() int { return f.numGlyphs }

// UnitsPerEm is the font's design-unit scale, from the head table.
func (f *Font) UnitsPerEm() uint16 { return f.head.UnitsPerEm }

// BoundingBox is the font-wide bounding box from the head table, in
// design units.
func (f *Font) BoundingBox() Rect {
	return Rect{
		XMin: FWord(f.head.XMin),
		YMin: FWord(f.head.YMin),
		XMax: FWord(f.head.XMax),
		YMax: FWord(f.head.YMax),
	}
}

// Segments enumerates the cmap format-4 subtable's segments in ascending
// order, as stored in the font.
func (f *Font) Segments() ([]cmap.Segment, error) {
	return f.cmap4.Segments()
}

// AllCharCodes enumerates every character code mapped by the cmap
// subtable, in ascending order, by expanding each segment's
// startCode..=endCode range.
func (f *Font) AllCharCodes() ([]CharCode, error) {
	segs, err := f.Segments()
	if err != nil {
		return nil, err
	}
	var codes []CharCode
	for _, seg := range segs {
		for code := uint32(seg.StartCode); code <= uint32(seg.EndCode); code++ {
			codes = append(codes, CharCode(code))
			if code == 0xFFFF {
				break
			}
		}
	}
	return codes, nil
}

// ResolveCharCode maps a character code to a glyph id via the cmap
// format-4 subtable. A code outside every segment resolves to glyph id 0
// (the missing-character glyph), which is a successful outcome, not an
// error.
func (f *Font) ResolveCharCode(code CharCode) (GlyphID, error) {
	id, err := f.cmap4.Resolve(uint16(code))
	if err != nil {
		return 0, err
	}
	return GlyphID(id), nil
}

// HorizontalMetric returns the advance width and left side bearing for a
// glyph id, as materialised from the hmtx table during construction.
func (f *Font) HorizontalMetric(id GlyphID) (LongHorMetric, error) {
	idx := int(id)
	if idx >= len(f.metrics) {
		return LongHorMetric{}, &font.UnknownGlyphError{GlyphID: uint16(id)}
	}
	m := f.metrics[idx]
	return LongHorMetric{
		AdvanceWidth:    UFWord(m.AdvanceWidth),
		LeftSideBearing: FWord(m.LeftSideBearing),
	}, nil
}

// GlyphLocation returns a glyph's byte offset within the glyf table and
// whether the glyph is empty, as materialised from the loca table during
// construction.
func (f *Font) GlyphLocation(id GlyphID) (GlyphOffset, error) {
	idx := int(id)
	if idx >= len(f.locaOffsets) {
		return GlyphOffset{}, &font.UnknownGlyphError{GlyphID: uint16(id)}
	}
	o := f.locaOffsets[idx]
	return GlyphOffset{Offset: o.Value, IsEmpty: o.IsEmpty}, nil
}

// GlyphForCharCode resolves code to a glyph id and decodes that glyph.
func (f *Font) GlyphForCharCode(code CharCode) (Glyph, error) {
	id, err := f.ResolveCharCode(code)
	if err != nil {
		return Glyph{}, err
	}
	return f.GlyphFor(id)
}

// GlyphFor decodes the glyph with the given id: its metrics always, and
// its geometry (contours or components) unless the glyph is empty.
func (f *Font) GlyphFor(id GlyphID) (Glyph, error) {
	idx := int(id)
	if idx < 0 || idx >= f.numGlyphs || idx >= len(f.locaOffsets) || idx >= len(f.metrics) {
		return Glyph{}, &font.UnknownGlyphError{GlyphID: uint16(id)}
	}

	offset := f.locaOffsets[idx]
	metric := f.metrics[idx]

	g := Glyph{
		GlyphID:         id,
		AdvanceWidth:    UFWord(metric.AdvanceWidth),
		LeftSideBearing: FWord(metric.LeftSideBearing),
	}

	if offset.IsEmpty {
		g.Kind = GlyphEmpty
		return g, nil
	}

	if err := f.c.SeekFromStart(f.glyfOffset + offset.Value); err != nil {
		return Glyph{}, err
	}
	numberOfContours, err := f.c.I16()
	if err != nil {
		return Glyph{}, err
	}
	xMin, err := f.c.I16()
	if err != nil {
		return Glyph{}, err
	}
	yMin, err := f.c.I16()
	if err != nil {
		return Glyph{}, err
	}
	xMax, err := f.c.I16()
	if err != nil {
		return Glyph{}, err
	}
	yMax, err := f.c.I16()
	if err != nil {
		return Glyph{}, err
	}
	g.XMin, g.YMin, g.XMax, g.YMax = FWord(xMin), FWord(yMin), FWord(xMax), FWord(yMax)

	if numberOfContours >= 0 {
		simple, err := glyf.ReadSimple(f.c, numberOfContours)
		if err != nil {
			return Glyph{}, err
		}
		g.Kind = GlyphSimple
		g.Contours = convertContours(simple.Contours)
		return g, nil
	}

	composite, err := glyf.ReadComposite(f.c)
	if err != nil {
		return Glyph{}, err
	}
	g.Kind = GlyphComposite
	g.Components = convertComponents(composite.Components)
	return g, nil
}

// Name looks up a human-readable name-table string, preferring the given
// language. It reports false if the font has no name table or no record
// for nameID.
func (f *Font) Name(nameID uint16, preferred language.Tag) (string, bool) {
	if f.names == nil {
		return "", false
	}
	return f.names.Find(nameID, preferred)
}

func convertContours(cs []glyf.Contour) []Contour {
	out := make([]Contour, len(cs))
	for i, c := range cs {
		contour := make(Contour, len(c))
		for j, p := range c {
			kind := Control
			if p.OnCurve {
				kind = OnCurve
			}
			contour[j] = Point{X: FWord(p.X), Y: FWord(p.Y), Kind: kind}
		}
		out[i] = contour
	}
	return out
}

func convertComponents(cs []glyf.Component) []Component {
	out := make([]Component, len(cs))
	for i, c := range cs {
		out[i] = Component{
			GlyphIndex: GlyphID(c.GlyphIndex),
			A:          c.A,
			B:          c.B,
			C:          c.C,
			D:          c.D,
			Argument: Argument{
				Kind:   ArgumentKind(c.Argument.Kind),
				DX:     c.Argument.DX,
				DY:     c.Argument.DY,
				Point1: c.Argument.Point1,
				Point2: c.Argument.Point2,
			},
		}
	}
	return out
}
