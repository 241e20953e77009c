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

package glyf

import (
	"github.com/voss-go/truetype/cursor"
)

const (
	componentArgsAreWords   = 1 << 0
	componentArgsAreXY      = 1 << 1
	componentWeHaveScale    = 1 << 3
	componentMoreComponents = 1 << 5
	componentWeHaveXYScale  = 1 << 6
	componentWeHaveTwoByTwo = 1 << 7
)

// ArgumentKind identifies how a component's positioning arguments are
// encoded and interpreted.
type ArgumentKind int

const (
	XYValue8 ArgumentKind = iota
	XYValue16
	PointMatch8
	PointMatch16
)

// Argument is a component's raw positioning data.
type Argument struct {
	Kind   ArgumentKind
	DX, DY int16
	Point1 uint16
	Point2 uint16
}

// Component is one element of a composite glyph. A/B/C/D are the raw
// transform values read from the font, not normalized F2Dot14 fractions:
// an unscaled component reads as the identity matrix {1, 0, 0, 1}.
type Component struct {
	GlyphIndex uint16
	A, B, C, D int16
	Argument   Argument
}

// Composite holds the decoded component list of a composite glyph.
type Composite struct {
	Components []Component
}

// ReadComposite decodes a composite glyph body: a chain of components,
// each terminated by clearing the MORE_COMPONENTS flag. The cursor must
// be positioned just past the glyph header.
func ReadComposite(c *cursor.Cursor) (*Composite, error) {
	var components []Component
	for {
		flags, err := c.U16()
		if err != nil {
			return nil, err
		}
		glyphIndex, err := c.U16()
		if err != nil {
			return nil, err
		}

		arg, err := readArgument(c, flags)
		if err != nil {
			return nil, err
		}

		var a, b, cc, d int16 = 1, 0, 0, 1
		switch {
		case flags&componentWeHaveScale != 0:
			s, err := c.I16()
			if err != nil {
				return nil, err
			}
			a, d = s, s
		case flags&componentWeHaveXYScale != 0:
			sx, err := c.I16()
			if err != nil {
				return nil, err
			}
			sy, err := c.I16()
			if err != nil {
				return nil, err
			}
			a, d = sx, sy
		case flags&componentWeHaveTwoByTwo != 0:
			va, err := c.I16()
			if err != nil {
				return nil, err
			}
			vb, err := c.I16()
			if err != nil {
				return nil, err
			}
			vc, err := c.I16()
			if err != nil {
				return nil, err
			}
			vd, err := c.I16()
			if err != nil {
				return nil, err
			}
			a, b, cc, d = va, vb, vc, vd
		}

		components = append(components, Component{
			GlyphIndex: glyphIndex,
			A:          a,
			B:          b,
			C:          cc,
			D:          d,
			Argument:   arg,
		})

		if flags&componentMoreComponents == 0 {
			break
		}
	}
	return &Composite{Components: components}, nil
}

// readArgument decodes the two component-positioning arguments, whose
// width and interpretation (xy offset vs. point-match index) are given
// by the ARG_1_AND_2_ARE_WORDS and ARGS_ARE_XY_VALUES flag bits.
func readArgument(c *cursor.Cursor, flags uint16) (Argument, error) {
	words := flags&componentArgsAreWords != 0
	xy := flags&componentArgsAreXY != 0

	switch {
	case words && xy:
		dx, err := c.I16()
		if err != nil {
			return Argument{}, err
		}
		dy, err := c.I16()
		if err != nil {
			return Argument{}, err
		}
		return Argument{Kind: XYValue16, DX: dx, DY: dy}, nil
	case !words && xy:
		dx, err := c.I8()
		if err != nil {
			return Argument{}, err
		}
		dy, err := c.I8()
		if err != nil {
			return Argument{}, err
		}
		return Argument{Kind: XYValue8, DX: int16(dx), DY: int16(dy)}, nil
	case words && !xy:
		p1, err := c.U16()
		if err != nil {
			return Argument{}, err
		}
		p2, err := c.U16()
		if err != nil {
			return Argument{}, err
		}
		return Argument{Kind: PointMatch16, Point1: p1, Point2: p2}, nil
	default:
		p1, err := c.U8()
		if err != nil {
			return Argument{}, err
		}
		p2, err := c.U8()
		if err != nil {
			return Argument{}, err
		}
		return Argument{Kind: PointMatch8, Point1: uint16(p1), Point2: uint16(p2)}, nil
	}
}
