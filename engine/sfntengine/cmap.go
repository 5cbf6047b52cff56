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
	"slices"

	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/webfont/engine"
)

// bestCmap returns the preferred Unicode subtable of the font's "cmap"
// table.
func bestCmap(f *engine.Font) (cmap.Subtable, error) {
	data, ok := f.Tables["cmap"]
	if !ok {
		return nil, errors.New("sfntengine: missing \"cmap\" table")
	}
	table, err := cmap.Decode(data)
	if err != nil {
		return nil, err
	}
	return table.GetBest()
}

// encodeCmap returns a "cmap" table for the given character mapping.
// Code points in the Basic Multilingual Plane are stored in format 4
// subtables; if supplementary code points are present, format 12
// subtables covering all code points are added.
func encodeCmap(mapping map[rune]glyph.ID) []byte {
	bmp := cmap.Format4{}
	supplementary := false
	for r, gid := range mapping {
		if r <= 0xFFFF {
			bmp[uint16(r)] = gid
		} else {
			supplementary = true
		}
	}

	format4 := bmp.Encode(0)
	table := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: format4,
		{PlatformID: 3, EncodingID: 1}: format4,
	}
	if supplementary {
		format12 := encodeFormat12(mapping)
		table[cmap.Key{PlatformID: 0, EncodingID: 4}] = format12
		table[cmap.Key{PlatformID: 3, EncodingID: 10}] = format12
	}
	return table.Encode()
}

// encodeFormat12 encodes a format 12 cmap subtable.
// https://learn.microsoft.com/en-us/typography/opentype/spec/cmap#format-12-segmented-coverage
func encodeFormat12(mapping map[rune]glyph.ID) []byte {
	codes := make([]rune, 0, len(mapping))
	for r := range mapping {
		codes = append(codes, r)
	}
	slices.Sort(codes)

	type group struct {
		start, end rune
		gid        glyph.ID
	}
	var groups []group
	for _, r := range codes {
		gid := mapping[r]
		if n := len(groups); n > 0 {
			last := &groups[n-1]
			if r == last.end+1 && int(gid) == int(last.gid)+int(r-last.start) {
				last.end = r
				continue
			}
		}
		groups = append(groups, group{start: r, end: r, gid: gid})
	}

	length := 16 + 12*len(groups)
	buf := make([]byte, length)
	binary.BigEndian.PutUint16(buf[0:], 12)
	binary.BigEndian.PutUint32(buf[4:], uint32(length))
	binary.BigEndian.PutUint32(buf[12:], uint32(len(groups)))
	for i, g := range groups {
		pos := 16 + 12*i
		binary.BigEndian.PutUint32(buf[pos:], uint32(g.start))
		binary.BigEndian.PutUint32(buf[pos+4:], uint32(g.end))
		binary.BigEndian.PutUint32(buf[pos+8:], uint32(g.gid))
	}
	return buf
}

// updateOS2CharRange sets usFirstCharIndex and usLastCharIndex in an
// "OS/2" table.  The table is modified in place.
func updateOS2CharRange(os2 []byte, mapping map[rune]glyph.ID) {
	if len(os2) < 68 || len(mapping) == 0 {
		return
	}
	first, last := rune(0xFFFF), rune(0)
	for r := range mapping {
		first = min(first, r)
		last = max(last, r)
	}
	binary.BigEndian.PutUint16(os2[64:], uint16(min(first, 0xFFFF)))
	binary.BigEndian.PutUint16(os2[66:], uint16(min(last, 0xFFFF)))
}

// Coverage returns the code points in text which are not mapped to a glyph
// by the font's "cmap" table, in increasing order.
func Coverage(f *engine.Font, text []rune) ([]rune, error) {
	sub, err := bestCmap(f)
	if err != nil {
		return nil, err
	}
	numGlyphs := f.NumGlyphs()
	var missing []rune
	for _, r := range text {
		if gid := sub.Lookup(r); gid == 0 || int(gid) >= numGlyphs {
			missing = append(missing, r)
		}
	}
	slices.Sort(missing)
	return slices.Compact(missing), nil
}
