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
	"fmt"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/internal/loca"
	"seehuhn.de/go/webfont/repertoire"
)

// Tables which only make sense together with glyph positioning and
// substitution.
var layoutTables = []string{"GSUB", "GPOS", "GDEF", "JSTF"}

// Subset implements the engine.Engine interface.
//
// Only fonts with TrueType outlines can be subsetted; CFF-based fonts need
// to be converted first.  If opt is nil, engine.DefaultSubsetOptions is
// used.
func (e *Engine) Subset(f *engine.Font, text repertoire.Set, opt *engine.SubsetOptions) error {
	if opt == nil {
		opt = engine.DefaultSubsetOptions()
	}
	if f.IsCFF() || !f.HasTable("glyf", "loca") {
		return &engine.UnsupportedError{
			Component: "sfntengine",
			Operation: "subsetting fonts without glyf outlines",
		}
	}

	glyf, err := readGlyf(f)
	if err != nil {
		return err
	}
	numGlyphs := glyf.NumGlyphs()

	sub, err := bestCmap(f)
	if err != nil {
		return err
	}
	mapping := make(map[rune]glyph.ID)
	keep := make(glyphSet)
	for r := range text {
		gid := sub.Lookup(r)
		if gid == 0 || int(gid) >= numGlyphs {
			continue
		}
		mapping[r] = gid
		keep[gid] = true
	}
	if opt.NotdefGlyph {
		keep[0] = true
	}
	if opt.RecommendedGlyphs {
		for gid := glyph.ID(1); gid < 4; gid++ {
			keep.add(gid, numGlyphs)
		}
	}

	dropLayout := opt.LayoutFeatures != nil && len(opt.LayoutFeatures) == 0
	if data, ok := f.Tables["GSUB"]; ok && !dropLayout {
		err := closeOverGSUB(data, opt, keep, numGlyphs)
		if err != nil {
			return fmt.Errorf("GSUB: %w", err)
		}
	}
	if data, ok := f.Tables["COLR"]; ok {
		closeOverCOLR(data, keep, numGlyphs)
	}
	if err := glyf.closeOverComponents(keep); err != nil {
		return err
	}
	if !opt.NotdefOutline && keep[0] {
		// Glyph 0 stays in the font, but without an outline.
		delete(keep, 0)
	}

	glyfData, offsets := glyf.subset(keep)
	locaData, short := loca.Encode(offsets)

	f.Tables["head"] = loca.SetFormat(f.Tables["head"], short)
	f.Tables["glyf"] = glyfData
	f.Tables["loca"] = locaData
	f.Tables["cmap"] = encodeCmap(mapping)

	if os2, ok := f.Tables["OS/2"]; ok {
		os2 = append([]byte(nil), os2...)
		updateOS2CharRange(os2, mapping)
		f.Tables["OS/2"] = os2
	}

	if post, ok := f.Tables["post"]; ok && !opt.GlyphNames {
		f.Tables["post"] = postWithoutNames(post)
	}

	if (opt.NameIDs != nil || opt.NameLanguages != nil) && f.HasTable("name") {
		name, err := filterNames(f.Tables["name"], opt.NameIDs, opt.NameLanguages)
		if err != nil {
			return err
		}
		f.Tables["name"] = name
	}

	if dropLayout {
		for _, name := range layoutTables {
			delete(f.Tables, name)
		}
	}

	// The signature would no longer match the font data.
	delete(f.Tables, "DSIG")

	return nil
}

// postWithoutNames returns a version 3.0 "post" table with the header
// fields of post.
// https://learn.microsoft.com/en-us/typography/opentype/spec/post
func postWithoutNames(post []byte) []byte {
	res := make([]byte, postHeaderSize)
	copy(res, post)
	binary.BigEndian.PutUint32(res, 0x00030000)
	return res
}

const postHeaderSize = 32
