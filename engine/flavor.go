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
	"fmt"
	"strings"
)

// Flavor is a font container format.
type Flavor int

// The supported container formats.  The zero value means "not set".
const (
	SFNT Flavor = iota + 1
	WOFF
	WOFF2
)

func (f Flavor) String() string {
	switch f {
	case SFNT:
		return "sfnt"
	case WOFF:
		return "woff"
	case WOFF2:
		return "woff2"
	default:
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
}

// Ext returns the usual file name extension for the container format.
func (f Flavor) Ext() string {
	switch f {
	case WOFF:
		return ".woff"
	case WOFF2:
		return ".woff2"
	default:
		return ".ttf"
	}
}

// ParseFlavor converts a format name, as returned by Flavor.String, into a
// Flavor.  The empty string yields WOFF2.
func ParseFlavor(s string) (Flavor, error) {
	switch strings.ToLower(s) {
	case "", "woff2":
		return WOFF2, nil
	case "woff":
		return WOFF, nil
	case "sfnt", "ttf", "otf":
		return SFNT, nil
	}
	return 0, fmt.Errorf("unknown font flavor %q", s)
}
