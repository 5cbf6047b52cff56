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

// Package engine defines the contract between the conversion pipeline and
// the font library which loads, subsets, converts and encodes fonts.
package engine

import (
	"encoding/binary"
	"io"
	"maps"

	"seehuhn.de/go/sfnt/header"
)

// Values of the sfnt scaler type (the "signature" at the start of a font
// file).
const (
	ScalerTypeTrueType uint32 = 0x00010000
	ScalerTypeApple    uint32 = 0x74727565 // "true"
	ScalerTypeCFF      uint32 = 0x4F54544F // "OTTO"
)

// Font is an in-memory font, represented as a collection of sfnt tables.
//
// A Font is owned by a single conversion and must not be shared between
// goroutines.
type Font struct {
	// ScalerType is the sfnt version tag, for example ScalerTypeCFF.
	ScalerType uint32

	// Tables maps four-byte table tags to the table data.
	Tables map[string][]byte

	// Flavor is the container format used when the font is encoded.
	Flavor Flavor
}

// HasTable reports whether the font contains all of the named tables.
func (f *Font) HasTable(names ...string) bool {
	for _, name := range names {
		if _, ok := f.Tables[name]; !ok {
			return false
		}
	}
	return true
}

// IsCFF reports whether the glyph outlines are stored in CFF format.
func (f *Font) IsCFF() bool {
	return f.HasTable("CFF ") || f.HasTable("CFF2")
}

// NumGlyphs returns the number of glyphs, as recorded in the "maxp" table.
func (f *Font) NumGlyphs() int {
	maxp := f.Tables["maxp"]
	if len(maxp) < 6 {
		return 0
	}
	return int(binary.BigEndian.Uint16(maxp[4:6]))
}

// SetFlavor selects the container format for encoding.
func (f *Font) SetFlavor(flavor Flavor) {
	f.Flavor = flavor
}

// Clone returns a deep copy of the font.
func (f *Font) Clone() *Font {
	tables := make(map[string][]byte, len(f.Tables))
	for name, data := range f.Tables {
		tables[name] = append([]byte(nil), data...)
	}
	return &Font{
		ScalerType: f.ScalerType,
		Tables:     tables,
		Flavor:     f.Flavor,
	}
}

// FinalTables returns a copy of the table map, where the checksum
// adjustment in the "head" table is set to the value for an sfnt file
// holding exactly these tables.  The font itself is not modified.
func (f *Font) FinalTables() map[string][]byte {
	tables := maps.Clone(f.Tables)
	for name, data := range tables {
		if data == nil {
			delete(tables, name)
		}
	}
	if head, ok := tables["head"]; ok && len(head) >= 12 {
		tables["head"] = append([]byte(nil), head...)
		// header.Write patches the "head" checksum in place.
		_, _ = header.Write(io.Discard, f.ScalerType, tables)
	}
	return tables
}

// WriteSFNT writes the font as an uncompressed sfnt file.
func (f *Font) WriteSFNT(w io.Writer) (int64, error) {
	return header.Write(w, f.ScalerType, f.FinalTables())
}

// Close releases the font data.  The font cannot be used afterwards.
func (f *Font) Close() error {
	f.Tables = nil
	return nil
}
