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

package cff2glyf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/engine/sfntengine"
	"seehuhn.de/go/webfont/internal/loca"
	"seehuhn.de/go/webfont/internal/testfont"
)

func load(t *testing.T, data []byte) *engine.Font {
	t.Helper()
	f, err := sfntengine.New().Load(data)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

// glyphBBox returns the bounding box stored in the glyph header.
func glyphBBox(t *testing.T, f *engine.Font, gid glyph.ID) [4]int16 {
	t.Helper()
	offsets, err := loca.Decode(f.Tables["loca"], loca.IsShort(f.Tables["head"]), f.NumGlyphs())
	if err != nil {
		t.Fatal(err)
	}
	data := f.Tables["glyf"][offsets[gid]:offsets[gid+1]]
	if len(data) < glyphHeaderSize {
		t.Fatalf("glyph %d is empty", gid)
	}
	var res [4]int16
	for i := range res {
		res[i] = int16(binary.BigEndian.Uint16(data[2+2*i:]))
	}
	return res
}

func TestConvertOutlines(t *testing.T) {
	orig := load(t, testfont.TrueType())
	f := load(t, testfont.OpenType())
	if !f.IsCFF() {
		t.Fatal("test font has no CFF outlines")
	}

	err := New().ConvertOutlines(f)
	if err != nil {
		t.Fatal(err)
	}

	if f.IsCFF() || f.HasTable("VORG") {
		t.Error("CFF tables remain after conversion")
	}
	if !f.HasTable("glyf", "loca") {
		t.Error("missing glyf/loca tables")
	}
	if f.ScalerType != engine.ScalerTypeTrueType {
		t.Errorf("scaler type %08x", f.ScalerType)
	}
	if f.NumGlyphs() != orig.NumGlyphs() {
		t.Errorf("NumGlyphs() = %d, want %d", f.NumGlyphs(), orig.NumGlyphs())
	}
	if v := binary.BigEndian.Uint32(f.Tables["maxp"]); v != 0x00010000 {
		t.Errorf("maxp version %08x", v)
	}

	buf := &bytes.Buffer{}
	if _, err := f.WriteSFNT(buf); err != nil {
		t.Fatal(err)
	}
	info, err := sfnt.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if info.IsCFF() {
		t.Error("converted font still reads as CFF")
	}

	table, err := cmap.Decode(orig.Tables["cmap"])
	if err != nil {
		t.Fatal(err)
	}
	sub, err := table.GetBest()
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range "O&@g" {
		gid := sub.Lookup(r)
		want := glyphBBox(t, orig, gid)
		got := glyphBBox(t, f, gid)
		for i := range want {
			if d := int(got[i]) - int(want[i]); d < -3 || d > 3 {
				t.Errorf("%q: bbox %v, want %v", r, got, want)
				break
			}
		}
	}
}

func TestConvertOutlinesTrueType(t *testing.T) {
	f := load(t, testfont.TrueType())
	before := f.Clone()

	if err := New().ConvertOutlines(f); err != nil {
		t.Fatal(err)
	}
	for name, data := range before.Tables {
		if !bytes.Equal(f.Tables[name], data) {
			t.Errorf("table %q modified", name)
		}
	}
}

func TestConvertOutlinesCFF2(t *testing.T) {
	f := load(t, testfont.OpenType())
	f.Tables["CFF2"] = f.Tables["CFF "]
	delete(f.Tables, "CFF ")

	err := New().ConvertOutlines(f)
	var unsupported *engine.UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("got %v, want UnsupportedError", err)
	}
	if unsupported.Component != "CFF2 outline converter" {
		t.Errorf("Component = %q", unsupported.Component)
	}
}
