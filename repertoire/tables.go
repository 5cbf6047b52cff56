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

package repertoire

// Structural spaces which every repertoire built from a text source
// contains.
const (
	Space            = ' '
	IdeographicSpace = '\u3000'
)

// BasicASCII is the printable ASCII range, U+0020 to U+007E.
var BasicASCII = asciiRange(0x20, 0x7E)

// CJKPunct lists the common full-width CJK punctuation marks.
const CJKPunct = "，。！？、；：‘’“”《》【】（）—…·\u3000"

func asciiRange(first, last rune) string {
	buf := make([]byte, 0, last-first+1)
	for r := first; r <= last; r++ {
		buf = append(buf, byte(r))
	}
	return string(buf)
}

// Flags selects the augmentation tables added to a repertoire.
type Flags struct {
	BasicASCII bool
	CJKPunct   bool
}

// DefaultFlags returns the flags used when nothing else is specified.
// Both augmentation tables are enabled.
func DefaultFlags() Flags {
	return Flags{BasicASCII: true, CJKPunct: true}
}
