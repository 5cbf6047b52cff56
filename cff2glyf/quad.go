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
	"math"

	"seehuhn.de/go/geom/vec"
)

// maxPieces limits the number of quadratic pieces used for a single cubic
// curve.
const maxPieces = 256

// cubicToQuads approximates the cubic Bézier curve with control points p0,
// p1, p2, p3 by a sequence of quadratic curves.  For every quadratic piece
// the control point and the end point are appended to res.
//
// The cubic is split into n pieces of equal parameter length, where n is
// the smallest number such that the distance between each piece and its
// quadratic approximation is at most tol.
func cubicToQuads(res []vec.Vec2, p0, p1, p2, p3 vec.Vec2, tol float64) []vec.Vec2 {
	n := 1
	if e := quadError(p0, p1, p2, p3); e > tol {
		// The error of a piece of length h scales like h^3.
		n = min(int(math.Ceil(math.Cbrt(e/tol))), maxPieces)
	}

	// power basis: c(t) = ((a*t + b)*t + c)*t + p0
	a := vec.Vec2{X: p3.X - 3*p2.X + 3*p1.X - p0.X, Y: p3.Y - 3*p2.Y + 3*p1.Y - p0.Y}
	b := vec.Vec2{X: 3 * (p2.X - 2*p1.X + p0.X), Y: 3 * (p2.Y - 2*p1.Y + p0.Y)}
	c := vec.Vec2{X: 3 * (p1.X - p0.X), Y: 3 * (p1.Y - p0.Y)}
	at := func(t float64) vec.Vec2 {
		return vec.Vec2{
			X: ((a.X*t+b.X)*t+c.X)*t + p0.X,
			Y: ((a.Y*t+b.Y)*t+c.Y)*t + p0.Y,
		}
	}
	deriv := func(t float64) vec.Vec2 {
		return vec.Vec2{
			X: (3*a.X*t+2*b.X)*t + c.X,
			Y: (3*a.Y*t+2*b.Y)*t + c.Y,
		}
	}

	h := 1 / float64(n)
	q0 := p0
	for i := 1; i <= n; i++ {
		t0 := float64(i-1) * h
		t1 := float64(i) * h
		q3 := p3
		if i < n {
			q3 = at(t1)
		}
		d0, d1 := deriv(t0), deriv(t1)
		q1 := vec.Vec2{X: q0.X + h*d0.X/3, Y: q0.Y + h*d0.Y/3}
		q2 := vec.Vec2{X: q3.X - h*d1.X/3, Y: q3.Y - h*d1.Y/3}

		ctrl := vec.Vec2{
			X: (3*(q1.X+q2.X) - q0.X - q3.X) / 4,
			Y: (3*(q1.Y+q2.Y) - q0.Y - q3.Y) / 4,
		}
		res = append(res, ctrl, q3)
		q0 = q3
	}
	return res
}

// quadError returns the maximal distance between a cubic curve and the
// quadratic curve with the same end points and control point
// (3(p1+p2)-(p0+p3))/4.
func quadError(p0, p1, p2, p3 vec.Vec2) float64 {
	dx := p3.X - 3*p2.X + 3*p1.X - p0.X
	dy := p3.Y - 3*p2.Y + 3*p1.Y - p0.Y
	return math.Sqrt(3) / 36 * math.Hypot(dx, dy)
}
