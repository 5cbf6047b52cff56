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

package engine

import (
	"errors"
	"io"

	"seehuhn.de/go/webfont/repertoire"
)

// Engine performs the font level operations of a conversion.
type Engine interface {
	// Load decodes a font file.
	Load(data []byte) (*Font, error)

	// ConvertOutlines changes CFF outlines into TrueType outlines, in place.
	// If the engine lacks this capability, the returned error wraps
	// ErrUnsupported.
	ConvertOutlines(f *Font) error

	// Subset removes all glyphs which are not needed to render the
	// characters in text, in place.
	Subset(f *Font, text repertoire.Set, opt *SubsetOptions) error

	// Encode writes the font in the container format given by f.Flavor.
	Encode(w io.Writer, f *Font) error
}

// OutlineConverter is an optional engine capability which converts CFF
// outlines to TrueType outlines.
type OutlineConverter interface {
	ConvertOutlines(f *Font) error
}

// SubsetOptions control which parts of a font survive subsetting.
type SubsetOptions struct {
	// NameIDs lists the name table records to keep.
	// A nil slice keeps all records.
	NameIDs []uint16

	// NameLanguages lists the name table language IDs to keep.
	// A nil slice keeps all languages.
	NameLanguages []uint16

	// LayoutFeatures lists the OpenType layout features whose
	// substitutions are followed when computing the glyph set.
	// A nil slice, or a slice containing "*", selects all features.
	LayoutFeatures []string

	// NotdefGlyph keeps glyph 0.  NotdefOutline keeps its outline.
	NotdefGlyph   bool
	NotdefOutline bool

	// RecommendedGlyphs keeps glyphs 1 to 3, which older fonts use for
	// .null, CR and space.
	RecommendedGlyphs bool

	// GlyphNames keeps the glyph names in the "post" table.  Otherwise
	// the table is reduced to a version 3.0 header.
	GlyphNames bool
}

// DefaultSubsetOptions returns the subsetting profile used for web fonts:
// all names, all languages and all layout features are kept, together with
// the .notdef glyph, its outline and the recommended glyphs.
func DefaultSubsetOptions() *SubsetOptions {
	return &SubsetOptions{
		LayoutFeatures:    []string{"*"},
		NotdefGlyph:       true,
		NotdefOutline:     true,
		RecommendedGlyphs: true,
	}
}

// AllFeatures reports whether the options select every layout feature.
func (opt *SubsetOptions) AllFeatures() bool {
	if opt.LayoutFeatures == nil {
		return true
	}
	for _, tag := range opt.LayoutFeatures {
		if tag == "*" {
			return true
		}
	}
	return false
}

// ErrUnsupported is wrapped by errors which indicate a missing engine
// capability.
var ErrUnsupported = errors.New("not supported")

// UnsupportedError indicates that an engine cannot perform an operation.
type UnsupportedError struct {
	Component string
	Operation string
}

func (err *UnsupportedError) Error() string {
	return err.Component + ": " + err.Operation + " not supported"
}

func (err *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}
