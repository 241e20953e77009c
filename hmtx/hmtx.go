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

// Package hmtx decodes the sfnt "hmtx" table into a dense per-glyph
// metric table.
package hmtx

import (
	"github.com/voss-go/truetype/cursor"
)

// LongHorMetric is one entry of the hmtx table.
type LongHorMetric struct {
	AdvanceWidth    uint16
	LeftSideBearing int16
}

// Read decodes numGlyphs metrics from the cursor's current position,
// given numOfLongHorMetrics from the hhea table. The first
// numOfLongHorMetrics entries are explicit {advance, lsb} pairs; every
// later glyph reuses the last explicit advance width, pairing it with its
// own lone left side bearing.
func Read(c *cursor.Cursor, numGlyphs, numOfLongHorMetrics int) ([]LongHorMetric, error) {
	metrics := make([]LongHorMetric, numGlyphs)

	var lastAdvance uint16
	for i := 0; i < numOfLongHorMetrics && i < numGlyphs; i++ {
		advance, err := c.U16()
		if err != nil {
			return nil, err
		}
		lsb, err := c.I16()
		if err != nil {
			return nil, err
		}
		metrics[i] = LongHorMetric{AdvanceWidth: advance, LeftSideBearing: lsb}
		lastAdvance = advance
	}
	for i := numOfLongHorMetrics; i < numGlyphs; i++ {
		lsb, err := c.I16()
		if err != nil {
			return nil, err
		}
		metrics[i] = LongHorMetric{AdvanceWidth: lastAdvance, LeftSideBearing: lsb}
	}
	return metrics, nil
}
