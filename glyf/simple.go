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

// Package glyf decodes the sfnt "glyf" table: simple-glyph contours and
// composite-glyph component lists.
package glyf

import (
	"github.com/voss-go/truetype/cursor"
)

const (
	flagOnCurve = 1 << 0
	flagXShort  = 1 << 1
	flagYShort  = 1 << 2
	flagRepeat  = 1 << 3
	flagXSame   = 1 << 4
	flagYSame   = 1 << 5
)

// Point is one outline point of a decoded simple glyph.
type Point struct {
	X, Y    int16
	OnCurve bool
}

// Contour is a connected run of points closing back on its first point.
type Contour []Point

// Simple holds the decoded outline of a simple (non-composite) glyph.
type Simple struct {
	Contours []Contour
}

// ReadSimple decodes a simple glyph body. The cursor must be positioned
// just past the glyph header (numberOfContours, xMin, yMin, xMax, yMax),
// with numberOfContours passed in separately since it also drives the
// caller's dispatch between simple and composite decoding.
func ReadSimple(c *cursor.Cursor, numberOfContours int16) (*Simple, error) {
	n := int(numberOfContours)

	endPtsOfContours := make([]uint16, n)
	for i := range endPtsOfContours {
		v, err := c.U16()
		if err != nil {
			return nil, err
		}
		endPtsOfContours[i] = v
	}

	instructionLength, err := c.U16()
	if err != nil {
		return nil, err
	}
	if _, err := c.Bytes(int(instructionLength)); err != nil {
		return nil, err
	}

	numPoints := 0
	if n > 0 {
		numPoints = int(endPtsOfContours[n-1]) + 1
	}

	flags, err := readFlags(c, numPoints)
	if err != nil {
		return nil, err
	}

	xs, err := readCoords(c, flags, flagXShort, flagXSame)
	if err != nil {
		return nil, err
	}
	ys, err := readCoords(c, flags, flagYShort, flagYSame)
	if err != nil {
		return nil, err
	}

	contours := make([]Contour, n)
	prev := 0
	for i := 0; i < n; i++ {
		var count int
		if i == 0 {
			count = int(endPtsOfContours[0]) + 1
		} else {
			count = int(endPtsOfContours[i]) - int(endPtsOfContours[i-1])
		}
		contour := make(Contour, count)
		for j := 0; j < count; j++ {
			idx := prev + j
			contour[j] = Point{
				X:       xs[idx],
				Y:       ys[idx],
				OnCurve: flags[idx]&flagOnCurve != 0,
			}
		}
		contours[i] = contour
		prev += count
	}

	return &Simple{Contours: contours}, nil
}

// readFlags decodes the run-length encoded flag stream for numPoints
// points: a repeat bit in a flag byte causes the following byte to be an
// extra repeat count, emitting the same flag byte count+1 times.
func readFlags(c *cursor.Cursor, numPoints int) ([]byte, error) {
	flags := make([]byte, numPoints)
	i := 0
	for i < numPoints {
		flag, err := c.U8()
		if err != nil {
			return nil, err
		}
		flags[i] = flag
		i++
		if flag&flagRepeat != 0 {
			count, err := c.U8()
			if err != nil {
				return nil, err
			}
			for ; count > 0 && i < numPoints; count-- {
				flags[i] = flag
				i++
			}
		}
	}
	return flags, nil
}

// readCoords decodes one coordinate axis as a running prefix sum of
// deltas, using shortBit/sameBit from the flags already decoded for the
// axis (flagXShort/flagXSame for x, flagYShort/flagYSame for y).
func readCoords(c *cursor.Cursor, flags []byte, shortBit, sameBit byte) ([]int16, error) {
	coords := make([]int16, len(flags))
	var v int16
	for i, flag := range flags {
		switch {
		case flag&shortBit != 0:
			d, err := c.U8()
			if err != nil {
				return nil, err
			}
			if flag&sameBit != 0 {
				v += int16(d)
			} else {
				v -= int16(d)
			}
		case flag&sameBit == 0:
			d, err := c.I16()
			if err != nil {
				return nil, err
			}
			v += d
		}
		coords[i] = v
	}
	return coords, nil
}
