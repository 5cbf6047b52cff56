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

// Package woff2 reads and writes fonts in the WOFF2 container format.
//
// All tables are stored with the null transform; the table data is
// compressed as a single Brotli stream.
//
// See https://www.w3.org/TR/WOFF2/ for the file format.
package woff2

import (
	"errors"
)

// Signature is the tag at the start of every WOFF2 file ("wOF2").
const Signature uint32 = 0x774F4632

const headerSize = 48

// fileHeader is the fixed-size header at the start of a WOFF2 file.
type fileHeader struct {
	Signature           uint32
	Flavor              uint32
	Length              uint32
	NumTables           uint16
	Reserved            uint16
	TotalSfntSize       uint32
	TotalCompressedSize uint32
	MajorVersion        uint16
	MinorVersion        uint16
	MetaOffset          uint32
	MetaLength          uint32
	MetaOrigLength      uint32
	PrivOffset          uint32
	PrivLength          uint32
}

// Transform versions in the directory flags.  For "glyf" and "loca" version
// 3 is the null transform, for all other tables version 0 is.
const (
	transformShift     = 6
	transformNullGlyf  = 3
	transformNullOther = 0
	tagIndexMask       = 0x3F
	tagIndexExplicit   = 0x3F
)

var (
	errMalformed   = errors.New("woff2: malformed file")
	errTransformed = errors.New("woff2: transformed tables not supported")
)

func nullTransform(tag string) byte {
	if tag == "glyf" || tag == "loca" {
		return transformNullGlyf
	}
	return transformNullOther
}

func pad4(n uint32) uint32 {
	return (n + 3) &^ 3
}
