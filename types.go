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

// GlyphID is an index into the font's glyph table. 0 always denotes the
// missing-character ("notdef") glyph.
type GlyphID uint16

// CharCode is a 16-bit code unit as used by a format-4 cmap subtable.
type CharCode uint16

// FWord is a signed font design-unit value.
type FWord int16

// UFWord is an unsigned font design-unit value.
type UFWord uint16

// Fixed is a 16.16 fixed-point version number, stored as two halves.
type Fixed struct {
	Major uint16
	Minor uint16
}

// Rect is an axis-aligned bounding box in font design-units.
type Rect struct {
	XMin, YMin, XMax, YMax FWord
}

// IsZero is true for the degenerate, all-zero rectangle.
func (r Rect) IsZero() bool {
	return r.XMin == 0 && r.YMin == 0 && r.XMax == 0 && r.YMax == 0
}

// Extend enlarges r to also cover other.
func (r *Rect) Extend(other Rect) {
	if other.IsZero() {
		return
	}
	if r.IsZero() {
		*r = other
		return
	}
	if other.XMin < r.XMin {
		r.XMin = other.XMin
	}
	if other.YMin < r.YMin {
		r.YMin = other.YMin
	}
	if other.XMax > r.XMax {
		r.XMax = other.XMax
	}
	if other.YMax > r.YMax {
		r.YMax = other.YMax
	}
}

// PointKind distinguishes on-curve points from quadratic control points.
type PointKind int

const (
	OnCurve PointKind = iota
	Control
)

// Point is a single contour vertex, in font design-units relative to the
// glyph origin.
type Point struct {
	X, Y FWord
	Kind PointKind
}

// Contour is an ordered sequence of points. A simple glyph's contours
// partition its points.
type Contour []Point

// LongHorMetric is one entry of the hmtx table.
type LongHorMetric struct {
	AdvanceWidth    UFWord
	LeftSideBearing FWord
}

// GlyphOffset locates one glyph's entry in the glyf table, as decoded from
// two consecutive loca entries.
type GlyphOffset struct {
	Offset  uint32
	IsEmpty bool
}

// ArgumentKind identifies how a composite-glyph component's positioning
// arguments are encoded and interpreted.
type ArgumentKind int

const (
	// XYValue8 holds a signed byte (dx, dy) offset pair.
	XYValue8 ArgumentKind = iota
	// XYValue16 holds a signed word (dx, dy) offset pair.
	XYValue16
	// PointMatch8 holds a pair of byte point indices (parent, child) to
	// align instead of an explicit offset.
	PointMatch8
	// PointMatch16 holds a pair of word point indices (parent, child).
	PointMatch16
)

// Argument is a composite-glyph component's positioning data. Its meaning
// depends on Kind: for the XYValue kinds, DX/DY is the component offset;
// for the PointMatch kinds, Point1/Point2 are the matched point indices.
type Argument struct {
	Kind   ArgumentKind
	DX, DY int16
	Point1 uint16
	Point2 uint16
}

// Component is one element of a composite glyph: a reference to another
// glyph, an affine transform [a b; c d], and a positioning argument. A/B/C/D
// are the raw values read from the font (identity is {1, 0, 0, 1}), not
// normalized F2Dot14 fractions.
type Component struct {
	GlyphIndex GlyphID
	A, B, C, D int16
	Argument   Argument
}

// GlyphKind distinguishes the three shapes a Glyph can take.
type GlyphKind int

const (
	// GlyphEmpty carries no geometry (a whitespace glyph, typically).
	GlyphEmpty GlyphKind = iota
	// GlyphSimple is a plain contour outline.
	GlyphSimple
	// GlyphComposite references other glyphs via Components.
	GlyphComposite
)

// Glyph is the result of assembling one glyph's metrics and geometry. The
// fields XMin/YMin/XMax/YMax and Contours/Components are meaningful only
// for the Kind they belong to; they are zero/nil otherwise.
type Glyph struct {
	GlyphID         GlyphID
	AdvanceWidth    UFWord
	LeftSideBearing FWord

	Kind GlyphKind

	XMin, YMin, XMax, YMax FWord
	Contours               []Contour
	Components             []Component
}
