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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func cubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	a, b, c, d := s*s*s, 3*s*s*t, 3*s*t*t, t*t*t
	return vec.Vec2{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func quadAt(p0, q, p1 vec.Vec2, t float64) vec.Vec2 {
	s := 1 - t
	a, b, c := s*s, 2*s*t, t*t
	return vec.Vec2{
		X: a*p0.X + b*q.X + c*p1.X,
		Y: a*p0.Y + b*q.Y + c*p1.Y,
	}
}

func TestCubicToQuads(t *testing.T) {
	cases := [][4]vec.Vec2{
		{{X: 0, Y: 0}, {X: 0, Y: 500}, {X: 500, Y: 500}, {X: 500, Y: 0}},
		{{X: 0, Y: 0}, {X: 1000, Y: 1000}, {X: -1000, Y: 1000}, {X: 0, Y: 0}},
		{{X: 10, Y: 20}, {X: 300, Y: -200}, {X: 40, Y: 900}, {X: 700, Y: 650}},
		{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 1, Y: 0.5}, {X: 1, Y: 1}},
	}
	for i, c := range cases {
		for _, tol := range []float64{0.1, 1, 10} {
			quads := cubicToQuads(nil, c[0], c[1], c[2], c[3], tol)
			if len(quads)%2 != 0 || len(quads) == 0 {
				t.Fatalf("%d: got %d points", i, len(quads))
			}
			if last := quads[len(quads)-1]; last != c[3] {
				t.Errorf("%d: curve ends at %v, want %v", i, last, c[3])
			}

			// Each quadratic piece approximates the cubic curve on an
			// interval of equal length in parameter space.
			n := len(quads) / 2
			start := c[0]
			var maxDist float64
			for k := 0; k < n; k++ {
				q, end := quads[2*k], quads[2*k+1]
				for j := 0; j <= 20; j++ {
					s := float64(j) / 20
					a := cubicAt(c[0], c[1], c[2], c[3], (float64(k)+s)/float64(n))
					b := quadAt(start, q, end, s)
					maxDist = math.Max(maxDist, math.Hypot(a.X-b.X, a.Y-b.Y))
				}
				start = end
			}
			if maxDist > tol*1.001 {
				t.Errorf("%d: distance %g exceeds tolerance %g", i, maxDist, tol)
			}
		}
	}
}

func TestCubicToQuadsExact(t *testing.T) {
	// a degree-elevated quadratic is recovered exactly
	p0 := vec.Vec2{X: 0, Y: 0}
	q := vec.Vec2{X: 300, Y: 600}
	p3 := vec.Vec2{X: 600, Y: 0}
	p1 := vec.Vec2{X: p0.X + 2*(q.X-p0.X)/3, Y: p0.Y + 2*(q.Y-p0.Y)/3}
	p2 := vec.Vec2{X: p3.X + 2*(q.X-p3.X)/3, Y: p3.Y + 2*(q.Y-p3.Y)/3}

	quads := cubicToQuads(nil, p0, p1, p2, p3, 0.01)
	if len(quads) != 2 {
		t.Fatalf("got %d pieces, want 1", len(quads)/2)
	}
	if d := math.Hypot(quads[0].X-q.X, quads[0].Y-q.Y); d > 1e-9 {
		t.Errorf("control point %v, want %v", quads[0], q)
	}
}
