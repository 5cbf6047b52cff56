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

// Package detect decides whether the outlines of a font need to be
// converted before the font can be subset.
package detect

import (
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/webfont/engine"
)

// Kind describes the outline format of a font.
type Kind int

// These are the outline formats distinguished by Classify.
const (
	GlyphOutline Kind = iota // quadratic outlines in a "glyf" table
	CFFOutline               // cubic outlines in a "CFF " table
)

func (k Kind) String() string {
	switch k {
	case GlyphOutline:
		return "glyf"
	case CFFOutline:
		return "CFF"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Classify returns CFFOutline if either the sfnt signature of f or the
// file name extension of pathHint indicate an OpenType font with CFF
// outlines.  Otherwise GlyphOutline is returned.
//
// Either indication is sufficient.  A font which is misclassified as
// CFFOutline passes unchanged through the outline conversion.
func Classify(f *engine.Font, pathHint string) Kind {
	if f.ScalerType == engine.ScalerTypeCFF || extension(pathHint) == ".otf" {
		return CFFOutline
	}
	return GlyphOutline
}

// Mismatch reports whether the file name extension of pathHint contradicts
// the sfnt signature of f.  Extensions other than .ttf and .otf never
// cause a mismatch.
func Mismatch(f *engine.Font, pathHint string) bool {
	isCFF := f.ScalerType == engine.ScalerTypeCFF
	switch extension(pathHint) {
	case ".otf":
		return !isCFF
	case ".ttf":
		return isCFF
	default:
		return false
	}
}

func extension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
