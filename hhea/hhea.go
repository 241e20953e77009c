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

// Package hhea decodes the sfnt "hhea" table.
package hhea

import (
	"github.com/voss-go/truetype/cursor"
)

// Info holds the hhea fields this parser needs, plus the metric fields
// decoded for completeness.
type Info struct {
	Ascent              int16
	Descent             int16
	LineGap             int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  int16
	MinRightSideBearing int16
	XMaxExtent          int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16

	// NumOfLongHorMetrics is the number of explicit {advance, lsb} pairs
	// at the start of hmtx; every remaining glyph reuses the last pair's
	// advance width with its own left side bearing.
	NumOfLongHorMetrics uint16
}

// Read decodes the 36-byte hhea table at the cursor's current position.
func Read(c *cursor.Cursor) (*Info, error) {
	if _, err := c.U32(); err != nil { // version
		return nil, err
	}
	ascent, err := c.I16()
	if err != nil {
		return nil, err
	}
	descent, err := c.I16()
	if err != nil {
		return nil, err
	}
	lineGap, err := c.I16()
	if err != nil {
		return nil, err
	}
	advanceWidthMax, err := c.U16()
	if err != nil {
		return nil, err
	}
	minLSB, err := c.I16()
	if err != nil {
		return nil, err
	}
	minRSB, err := c.I16()
	if err != nil {
		return nil, err
	}
	xMaxExtent, err := c.I16()
	if err != nil {
		return nil, err
	}
	caretSlopeRise, err := c.I16()
	if err != nil {
		return nil, err
	}
	caretSlopeRun, err := c.I16()
	if err != nil {
		return nil, err
	}
	caretOffset, err := c.I16()
	if err != nil {
		return nil, err
	}
	for i := 0; i < 4; i++ { // reserved
		if _, err := c.I16(); err != nil {
			return nil, err
		}
	}
	if _, err := c.I16(); err != nil { // metricDataFormat
		return nil, err
	}
	numOfLongHorMetrics, err := c.U16()
	if err != nil {
		return nil, err
	}

	return &Info{
		Ascent:              ascent,
		Descent:             descent,
		LineGap:             lineGap,
		AdvanceWidthMax:     advanceWidthMax,
		MinLeftSideBearing:  minLSB,
		MinRightSideBearing: minRSB,
		XMaxExtent:          xMaxExtent,
		CaretSlopeRise:      caretSlopeRise,
		CaretSlopeRun:       caretSlopeRun,
		CaretOffset:         caretOffset,
		NumOfLongHorMetrics: numOfLongHorMetrics,
	}, nil
}
