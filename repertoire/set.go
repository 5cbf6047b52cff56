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

// Package repertoire assembles the set of characters a subsetted font
// has to support.
package repertoire

import (
	"slices"
	"strings"
)

// Set is an unordered set of Unicode code points.
type Set map[rune]struct{}

// NewSet returns a set containing the given code points.
func NewSet(rr ...rune) Set {
	s := make(Set, len(rr))
	for _, r := range rr {
		s[r] = struct{}{}
	}
	return s
}

// Add adds r to the set.
func (s Set) Add(r rune) {
	s[r] = struct{}{}
}

// AddString adds every code point of str to the set.
func (s Set) AddString(str string) {
	for _, r := range str {
		s[r] = struct{}{}
	}
}

// Union adds all elements of other to s.
func (s Set) Union(other Set) {
	for r := range other {
		s[r] = struct{}{}
	}
}

// Contains reports whether r is an element of s.
func (s Set) Contains(r rune) bool {
	_, ok := s[r]
	return ok
}

// Len returns the number of code points in the set.
func (s Set) Len() int {
	return len(s)
}

// Runes returns the elements of s in increasing order.
func (s Set) Runes() []rune {
	res := make([]rune, 0, len(s))
	for r := range s {
		res = append(res, r)
	}
	slices.Sort(res)
	return res
}

// Equal reports whether s and other contain the same code points.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for r := range s {
		if _, ok := other[r]; !ok {
			return false
		}
	}
	return true
}

// String returns the elements of s, in increasing order, as a string.
func (s Set) String() string {
	var b strings.Builder
	for _, r := range s.Runes() {
		b.WriteRune(r)
	}
	return b.String()
}
