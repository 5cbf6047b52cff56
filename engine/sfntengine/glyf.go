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

package sfntengine

import (
	"encoding/binary"
	"errors"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/internal/loca"
)

const (
	headLength        = 54
	glyphHeaderLength = 10
)

// Flags used in the components of composite glyphs.
// https://learn.microsoft.com/en-us/typography/opentype/spec/glyf#composite-glyph-description
const (
	flagArg1And2AreWords   = 0x0001
	flagWeHaveAScale       = 0x0008
	flagMoreComponents     = 0x0020
	flagWeHaveAnXAndYScale = 0x0040
	flagWeHaveATwoByTwo    = 0x0080
)

var errComposite = errors.New("sfntengine: malformed composite glyph")

// glyfTable gives access to the glyph data of a TrueType font.
type glyfTable struct {
	data    []byte
	offsets []uint32
}

func readGlyf(f *engine.Font) (*glyfTable, error) {
	head := f.Tables["head"]
	if len(head) < headLength {
		return nil, errors.New("sfntengine: missing or short \"head\" table")
	}
	offsets, err := loca.Decode(f.Tables["loca"], loca.IsShort(head), f.NumGlyphs())
	if err != nil {
		return nil, err
	}
	data := f.Tables["glyf"]
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] || offsets[i] > uint32(len(data)) {
			return nil, loca.ErrMalformed
		}
	}
	return &glyfTable{data: data, offsets: offsets}, nil
}

// Glyph returns the data for the given glyph.
func (g *glyfTable) Glyph(gid glyph.ID) []byte {
	return g.data[g.offsets[gid]:g.offsets[gid+1]]
}

// NumGlyphs returns the number of glyphs in the table.
func (g *glyfTable) NumGlyphs() int {
	return len(g.offsets) - 1
}

// components returns the glyphs referenced by a composite glyph.
// For simple glyphs, nil is returned.
func components(data []byte) ([]glyph.ID, error) {
	if len(data) < glyphHeaderLength || int16(binary.BigEndian.Uint16(data)) >= 0 {
		return nil, nil
	}

	var res []glyph.ID
	pos := glyphHeaderLength
	for {
		if pos+4 > len(data) {
			return nil, errComposite
		}
		flags := binary.BigEndian.Uint16(data[pos:])
		res = append(res, glyph.ID(binary.BigEndian.Uint16(data[pos+2:])))
		pos += 4

		if flags&flagArg1And2AreWords != 0 {
			pos += 4
		} else {
			pos += 2
		}
		switch {
		case flags&flagWeHaveAScale != 0:
			pos += 2
		case flags&flagWeHaveAnXAndYScale != 0:
			pos += 4
		case flags&flagWeHaveATwoByTwo != 0:
			pos += 8
		}

		if flags&flagMoreComponents == 0 {
			break
		}
	}
	return res, nil
}

// subset returns new "glyf" and "loca" data, where all glyphs not in keep
// are empty.  Glyph data is padded to a multiple of four bytes.
func (g *glyfTable) subset(keep glyphSet) (glyf []byte, offsets []uint32) {
	n := g.NumGlyphs()
	offsets = make([]uint32, n+1)
	for i := 0; i < n; i++ {
		gid := glyph.ID(i)
		if keep[gid] {
			body := g.Glyph(gid)
			glyf = append(glyf, body...)
			for len(glyf)%4 != 0 {
				glyf = append(glyf, 0)
			}
		}
		offsets[i+1] = uint32(len(glyf))
	}
	return glyf, offsets
}
