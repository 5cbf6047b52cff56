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

// Package sfntengine implements the font engine on top of the
// seehuhn.de/go/sfnt library.
//
// Fonts are kept as raw sfnt tables.  Subsetting keeps glyph IDs
// unchanged: glyphs which are not needed are replaced by empty glyphs.
// This way all tables which refer to glyph IDs (GSUB, GPOS, GDEF, hmtx,
// post, ...) remain valid without being rewritten, and the compression
// step removes most of the overhead of the empty glyphs.
package sfntengine

import (
	"io"

	"seehuhn.de/go/sfnt/header"

	"seehuhn.de/go/webfont/engine"
	"seehuhn.de/go/webfont/woff"
	"seehuhn.de/go/webfont/woff2"
)

// Engine is a font engine for TrueType and OpenType fonts.
type Engine struct {
	outlines engine.OutlineConverter
}

var _ engine.Engine = (*Engine)(nil)

// Option configures an Engine.
type Option func(*Engine)

// WithOutlineConverter enables the conversion of CFF outlines to
// TrueType outlines.
func WithOutlineConverter(c engine.OutlineConverter) Option {
	return func(e *Engine) {
		e.outlines = c
	}
}

// New returns a new engine.  Without WithOutlineConverter, the engine
// cannot convert CFF-based fonts.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ConvertOutlines implements the engine.Engine interface.
// Fonts with TrueType outlines are left unchanged, even if no outline
// converter is configured.
func (e *Engine) ConvertOutlines(f *engine.Font) error {
	if !f.IsCFF() {
		return nil
	}
	if e.outlines == nil {
		return &engine.UnsupportedError{
			Component: "CFF outline converter",
			Operation: "conversion to glyf outlines",
		}
	}
	return e.outlines.ConvertOutlines(f)
}

// Encode implements the engine.Engine interface.
func (e *Engine) Encode(w io.Writer, f *engine.Font) error {
	tables := f.FinalTables()
	var err error
	switch f.Flavor {
	case engine.WOFF2:
		_, err = woff2.Write(w, f.ScalerType, tables)
	case engine.WOFF:
		_, err = woff.Write(w, f.ScalerType, tables)
	default:
		_, err = header.Write(w, f.ScalerType, tables)
	}
	return err
}
