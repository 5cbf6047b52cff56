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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"seehuhn.de/go/sfnt/header"

	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/woff"
	"seehuhn.de/go/webfont/woff2"
)

const scalerTypeCollection uint32 = 0x74746366 // "ttcf"

// Load implements the engine.Engine interface.
// The data can be an sfnt file (TrueType or OpenType), or a WOFF or WOFF2
// file.
func (e *Engine) Load(data []byte) (*engine.Font, error) {
	if len(data) < 12 {
		return nil, errors.New("sfntengine: file too short")
	}

	var f *engine.Font
	switch binary.BigEndian.Uint32(data) {
	case woff2.Signature:
		w, err := woff2.Read(data)
		if err != nil {
			return nil, err
		}
		f = &engine.Font{ScalerType: w.Flavor, Tables: w.Tables}
	case woff.Signature:
		w, err := woff.Read(data)
		if err != nil {
			return nil, err
		}
		f = &engine.Font{ScalerType: w.Flavor, Tables: w.Tables}
	case scalerTypeCollection:
		return nil, &engine.UnsupportedError{
			Component: "sfntengine",
			Operation: "reading font collections",
		}
	default:
		r := bytes.NewReader(data)
		info, err := header.Read(r)
		if err != nil {
			return nil, err
		}
		tables := make(map[string][]byte, len(info.Toc))
		for name := range info.Toc {
			body, err := info.ReadTableBytes(r, name)
			if err != nil {
				return nil, fmt.Errorf("table %q: %w", name, err)
			}
			tables[name] = body
		}
		f = &engine.Font{ScalerType: info.ScalerType, Tables: tables}
	}

	if err := checkTables(f); err != nil {
		return nil, err
	}
	return f, nil
}

func checkTables(f *engine.Font) error {
	if len(f.Tables["head"]) < headLength {
		return errors.New("sfntengine: missing or short \"head\" table")
	}
	if f.NumGlyphs() == 0 {
		return errors.New("sfntengine: font has no glyphs")
	}
	if !f.IsCFF() && !f.HasTable("glyf", "loca") {
		return errors.New("sfntengine: no glyph outlines found")
	}
	return nil
}
