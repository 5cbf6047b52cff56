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

// Build returns the set of code points to keep when subsetting a font.
//
// The result contains every code point of primary, the structural spaces
// U+0020 and U+3000, and the augmentation tables selected by flags.
// If primary is blank and no augmentation table is selected, nothing but
// the two spaces would be kept and an *EmptyRepertoireError is returned.
func Build(primary string, flags Flags) (Set, error) {
	if IsBlank(primary) && !flags.BasicASCII && !flags.CJKPunct {
		return nil, &EmptyRepertoireError{}
	}

	s := make(Set, len(primary)+len(BasicASCII)+len(CJKPunct))
	s.AddString(primary)
	s.Add(Space)
	s.Add(IdeographicSpace)
	if flags.BasicASCII {
		s.AddString(BasicASCII)
	}
	if flags.CJKPunct {
		s.AddString(CJKPunct)
	}
	return s, nil
}
