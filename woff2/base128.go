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

package woff2

import "errors"

var errBase128 = errors.New("woff2: invalid UIntBase128 value")

// appendBase128 appends the UIntBase128 encoding of x to buf.
func appendBase128(buf []byte, x uint32) []byte {
	n := 1
	for y := x >> 7; y != 0; y >>= 7 {
		n++
	}
	for i := n - 1; i >= 0; i-- {
		b := byte(x>>(7*uint(i))) & 0x7F
		if i > 0 {
			b |= 0x80
		}
		buf = append(buf, b)
	}
	return buf
}

// readBase128 decodes a UIntBase128 value from the start of buf.
// It returns the value and the number of bytes used.
func readBase128(buf []byte) (uint32, int, error) {
	var x uint32
	for i := 0; i < 5; i++ {
		if i >= len(buf) {
			return 0, 0, errBase128
		}
		b := buf[i]
		if i == 0 && b == 0x80 {
			// leading zeros are not allowed
			return 0, 0, errBase128
		}
		if x&0xFE000000 != 0 {
			return 0, 0, errBase128
		}
		x = x<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return x, i + 1, nil
		}
	}
	return 0, 0, errBase128
}
