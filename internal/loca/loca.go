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

// Package loca reads and writes the "loca" table of TrueType fonts.
// https://learn.microsoft.com/en-us/typography/opentype/spec/loca
package loca

import (
	"encoding/binary"
	"errors"
)

// MaxShort is the largest "glyf" table size which can be addressed by a
// "loca" table in short format.
const MaxShort = 2 * 0xFFFF

// ErrMalformed indicates a "loca" table which is too short.
var ErrMalformed = errors.New("loca: malformed table")

// Decode returns the numGlyphs+1 glyph offsets stored in a "loca" table.
func Decode(data []byte, short bool, numGlyphs int) ([]uint32, error) {
	offsets := make([]uint32, numGlyphs+1)
	if short {
		if len(data) < 2*(numGlyphs+1) {
			return nil, ErrMalformed
		}
		for i := range offsets {
			offsets[i] = 2 * uint32(binary.BigEndian.Uint16(data[2*i:]))
		}
	} else {
		if len(data) < 4*(numGlyphs+1) {
			return nil, ErrMalformed
		}
		for i := range offsets {
			offsets[i] = binary.BigEndian.Uint32(data[4*i:])
		}
	}
	return offsets, nil
}

// Encode encodes glyph offsets as a "loca" table.  The short format is
// used whenever possible.  All offsets must be even.
func Encode(offsets []uint32) (data []byte, short bool) {
	short = offsets[len(offsets)-1] <= MaxShort
	if short {
		data = make([]byte, 2*len(offsets))
		for i, o := range offsets {
			binary.BigEndian.PutUint16(data[2*i:], uint16(o/2))
		}
	} else {
		data = make([]byte, 4*len(offsets))
		for i, o := range offsets {
			binary.BigEndian.PutUint32(data[4*i:], o)
		}
	}
	return data, short
}

// IndexToLocFormat is the byte offset of the indexToLocFormat field in
// the "head" table.
const IndexToLocFormat = 50

// SetFormat returns a copy of the "head" table with the indexToLocFormat
// field set for the given "loca" format.
func SetFormat(head []byte, short bool) []byte {
	head = append([]byte(nil), head...)
	var format uint16
	if !short {
		format = 1
	}
	binary.BigEndian.PutUint16(head[IndexToLocFormat:], format)
	return head
}

// IsShort reports whether the "head" table selects the short "loca"
// format.
func IsShort(head []byte) bool {
	return binary.BigEndian.Uint16(head[IndexToLocFormat:]) == 0
}
