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

// Package testfont provides fonts for use in unit tests.
package testfont

import (
	"bytes"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/sfnt"
)

// TrueType returns the Go Regular font as a TrueType file.
func TrueType() []byte {
	return bytes.Clone(goregular.TTF)
}

// MakeGlyfFont returns a font with glyf outlines.
func MakeGlyfFont() *sfnt.Font {
	r := bytes.NewReader(goregular.TTF)
	info, err := sfnt.Read(r)
	if err != nil {
		panic(err)
	}
	return info
}

// MakeCFFFont returns a font with CFF outlines and without CIDFont
// operators.
func MakeCFFFont() *sfnt.Font {
	info, err := toCFF(MakeGlyfFont())
	if err != nil {
		panic(err)
	}
	return info
}

// OpenType returns Go Regular, with CFF outlines, as an OpenType file.
func OpenType() []byte {
	info := MakeCFFFont()
	buf := &bytes.Buffer{}
	_, err := info.Write(buf)
	if err != nil {
		panic(err)
	}
	return buf.Bytes()
}
