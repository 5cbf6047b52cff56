// seehuhn.de/go/webfont - convert fonts to compressed web fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package cff2glyf converts fonts with CFF outlines into fonts with
// TrueType ("glyf") outlines.
//
// Cubic Bézier curves are approximated by quadratic ones, and hinting
// information is discarded.
package cff2glyf

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/maxp"

	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/internal/loca"
)

// DefaultTolerance is the default approximation tolerance, in font design
// units.
const DefaultTolerance = 1.0

// Converter converts CFF outlines to TrueType outlines.
// It implements the engine.OutlineConverter interface.
type Converter struct {
	// Tolerance is the maximal distance, in font design units, between a
	// cubic curve and its quadratic approximation.
	Tolerance float64
}

var _ engine.OutlineConverter = (*Converter)(nil)

// New returns a converter with the default tolerance.
func New() *Converter {
	return &Converter{Tolerance: DefaultTolerance}
}

// Tables which only apply to CFF-based fonts.
var cffTables = []string{"CFF ", "CFF2", "VORG"}

// ConvertOutlines replaces the CFF outlines of f by equivalent TrueType
// outlines.  Fonts which already have TrueType outlines are left
// unchanged.
func (c *Converter) ConvertOutlines(f *engine.Font) error {
	if !f.IsCFF() {
		return nil
	}
	if f.HasTable("CFF2") {
		return &engine.UnsupportedError{
			Component: "CFF2 outline converter",
			Operation: "conversion to glyf outlines",
		}
	}

	buf := &bytes.Buffer{}
	if _, err := f.WriteSFNT(buf); err != nil {
		return err
	}
	info, err := sfnt.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return fmt.Errorf("cff2glyf: %w", err)
	}

	tol := c.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}

	numGlyphs := f.NumGlyphs()
	var glyfData []byte
	offsets := make([]uint32, numGlyphs+1)
	stats := &maxp.TTFInfo{MaxZones: 2}
	for i := 0; i < numGlyphs; i++ {
		cc := contours(info.Outlines.Path(glyph.ID(i)), tol)
		glyfData = append(glyfData, encodeGlyph(cc)...)
		for len(glyfData)%4 != 0 {
			glyfData = append(glyfData, 0)
		}
		offsets[i+1] = uint32(len(glyfData))

		numPoints := 0
		for _, ct := range cc {
			numPoints += len(ct)
		}
		stats.MaxPoints = max(stats.MaxPoints, uint16(numPoints))
		stats.MaxContours = max(stats.MaxContours, uint16(len(cc)))
	}

	locaData, short := loca.Encode(offsets)
	maxpInfo := &maxp.Info{
		NumGlyphs: numGlyphs,
		TTF:       stats,
	}

	head := loca.SetFormat(f.Tables["head"], short)
	head[glyphDataFormat] = 0
	head[glyphDataFormat+1] = 0

	for _, name := range cffTables {
		delete(f.Tables, name)
	}
	f.Tables["glyf"] = glyfData
	f.Tables["loca"] = locaData
	f.Tables["maxp"] = maxpInfo.Encode()
	f.Tables["head"] = head
	f.ScalerType = engine.ScalerTypeTrueType
	return nil
}

// glyphDataFormat is the byte offset of the glyphDataFormat field in the
// "head" table.
const glyphDataFormat = 52
