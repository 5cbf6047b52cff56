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

// Package webfont converts TrueType and OpenType fonts into web fonts.
//
// A conversion loads a font, converts CFF outlines to TrueType outlines
// where needed, optionally removes all glyphs which are not needed for a
// given text, and writes the result as a WOFF2 file:
//
//	conv := webfont.NewDefault()
//	text := "常用字"
//	err := conv.Convert(&webfont.Request{
//	    InputPath:  "NotoSansSC-Regular.otf",
//	    OutputPath: "NotoSansSC-Regular.woff2",
//	    Text:       &text,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The characters to keep can be given as a string (Request.Text) or as a
// text file (Request.TextPath).  When a text is given, the space U+0020
// and the ideographic space U+3000 are always kept.  By default, the
// printable ASCII characters and common CJK punctuation are kept as well;
// Request.Flags can switch this off.
// Without a text, all glyphs of the font are kept.
//
// The font level operations are delegated to an engine.Engine.  NewDefault
// uses the engine from package sfntengine, together with the CFF outline
// converter from package cff2glyf.
package webfont
