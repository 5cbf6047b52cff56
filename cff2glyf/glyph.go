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

package cff2glyf

import (
	"encoding/binary"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// point is a point of a TrueType outline.
type point struct {
	X, Y    int16
	OnCurve bool
}

// contour is a closed TrueType contour.  The first point is on the curve.
type contour []point

// contours converts a glyph path into TrueType contours with clockwise
// orientation.  Cubic segments are approximated by quadratic ones.
func contours(p path.Path, tol float64) []contour {
	var res []contour
	var cur []vec.Vec2
	var onCurve []bool

	finish := func() {
		if c := makeContour(cur, onCurve); c != nil {
			res = append(res, c)
		}
		cur = cur[:0]
		onCurve = onCurve[:0]
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish()
			cur = append(cur, pts[0])
			onCurve = append(onCurve, true)
		case path.CmdLineTo:
			cur = append(cur, pts[0])
			onCurve = append(onCurve, true)
		case path.CmdQuadTo:
			cur = append(cur, pts[0], pts[1])
			onCurve = append(onCurve, false, true)
		case path.CmdCubeTo:
			if len(cur) == 0 {
				continue
			}
			start := len(cur)
			cur = cubicToQuads(cur, cur[len(cur)-1], pts[0], pts[1], pts[2], tol)
			for i := start; i < len(cur); i++ {
				onCurve = append(onCurve, (i-start)%2 == 1)
			}
		case path.CmdClose:
			finish()
		}
	}
	finish()
	return res
}

// makeContour rounds the points to integer coordinates, removes
// duplicate points and reverses the orientation.  Degenerate contours are
// discarded.
func makeContour(pts []vec.Vec2, onCurve []bool) contour {
	var c contour
	for i, p := range pts {
		q := point{X: round16(p.X), Y: round16(p.Y), OnCurve: onCurve[i]}
		if n := len(c); n > 0 && c[n-1] == q && q.OnCurve {
			continue
		}
		c = append(c, q)
	}
	// drop the closing point, if it repeats the start point
	if n := len(c); n > 1 && c[n-1] == c[0] {
		c = c[:n-1]
	}
	if len(c) < 3 {
		return nil
	}

	// PostScript outlines run counter-clockwise, TrueType outlines
	// clockwise.
	for i, j := 1, len(c)-1; i < j; i, j = i+1, j-1 {
		c[i], c[j] = c[j], c[i]
	}
	return c
}

func round16(x float64) int16 {
	return int16(max(math.MinInt16, min(math.MaxInt16, math.Round(x))))
}

// Flags for points of simple glyphs.
// https://learn.microsoft.com/en-us/typography/opentype/spec/glyf#simple-glyph-description
const (
	flagOnCurve     = 0x01
	flagXShort      = 0x02
	flagYShort      = 0x04
	flagRepeat      = 0x08
	flagXSameOrPos  = 0x10
	flagYSameOrPos  = 0x20
	glyphHeaderSize = 10
)

// encodeGlyph encodes a TrueType simple glyph without instructions.
// If there are no contours, the result is empty.
func encodeGlyph(cc []contour) []byte {
	if len(cc) == 0 {
		return nil
	}

	xMin, yMin := int16(math.MaxInt16), int16(math.MaxInt16)
	xMax, yMax := int16(math.MinInt16), int16(math.MinInt16)
	var endPts []uint16
	var flags, xs, ys []byte
	var lastX, lastY int16
	numPoints := 0
	for _, c := range cc {
		for _, p := range c {
			xMin, xMax = min(xMin, p.X), max(xMax, p.X)
			yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)

			var flag byte
			if p.OnCurve {
				flag |= flagOnCurve
			}
			dx := int(p.X) - int(lastX)
			dy := int(p.Y) - int(lastY)
			lastX, lastY = p.X, p.Y

			flag, xs = encodeDelta(flag, xs, dx, flagXShort, flagXSameOrPos)
			flag, ys = encodeDelta(flag, ys, dy, flagYShort, flagYSameOrPos)
			flags = append(flags, flag)
		}
		numPoints += len(c)
		endPts = append(endPts, uint16(numPoints-1))
	}

	flags = packFlags(flags)
	buf := make([]byte, glyphHeaderSize, glyphHeaderSize+2*len(endPts)+2+len(flags)+len(xs)+len(ys))
	binary.BigEndian.PutUint16(buf[0:], uint16(len(cc)))
	binary.BigEndian.PutUint16(buf[2:], uint16(xMin))
	binary.BigEndian.PutUint16(buf[4:], uint16(yMin))
	binary.BigEndian.PutUint16(buf[6:], uint16(xMax))
	binary.BigEndian.PutUint16(buf[8:], uint16(yMax))
	for _, e := range endPts {
		buf = binary.BigEndian.AppendUint16(buf, e)
	}
	buf = binary.BigEndian.AppendUint16(buf, 0) // instructionLength
	buf = append(buf, flags...)
	buf = append(buf, xs...)
	buf = append(buf, ys...)
	return buf
}

// encodeDelta appends the encoding of a coordinate delta and sets the
// corresponding bits in flag.
func encodeDelta(flag byte, out []byte, d int, short, sameOrPos byte) (byte, []byte) {
	switch {
	case d == 0:
		flag |= sameOrPos
	case d > -256 && d < 256:
		flag |= short
		if d > 0 {
			flag |= sameOrPos
		} else {
			d = -d
		}
		out = append(out, byte(d))
	default:
		out = binary.BigEndian.AppendUint16(out, uint16(int16(d)))
	}
	return flag, out
}

// packFlags compresses runs of identical point flags using the repeat
// flag.
func packFlags(flags []byte) []byte {
	res := make([]byte, 0, len(flags))
	for i := 0; i < len(flags); {
		j := i + 1
		for j < len(flags) && flags[j] == flags[i] && j-i <= 255 {
			j++
		}
		if repeat := j - i - 1; repeat > 0 {
			res = append(res, flags[i]|flagRepeat, byte(repeat))
		} else {
			res = append(res, flags[i])
		}
		i = j
	}
	return res
}
