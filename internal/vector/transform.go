/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "math"

// Transform is an affine map from space Src to space Dst:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Transform[Src, Dst Space] struct {
	A, B, C, D, E, F float64
}

// Identity maps a space onto itself.
func Identity[S Space]() Transform[S, S] { return Transform[S, S]{A: 1, D: 1} }

// Translation moves every point by (tx, ty) while changing its space tag.
func Translation[Src, Dst Space](tx, ty float64) Transform[Src, Dst] {
	return Transform[Src, Dst]{A: 1, D: 1, E: tx, F: ty}
}

// Scaling scales about the origin.
func Scaling[Src, Dst Space](sx, sy float64) Transform[Src, Dst] {
	return Transform[Src, Dst]{A: sx, D: sy}
}

// Rotation rotates counter-clockwise about the origin by rad radians
// (clockwise on screen, where y grows downwards).
func Rotation[Src, Dst Space](rad float64) Transform[Src, Dst] {
	s, c := math.Sincos(rad)
	return Transform[Src, Dst]{A: c, B: s, C: -s, D: c}
}

// Then returns the transform applying t first and u second.
func Then[A, B, C Space](t Transform[A, B], u Transform[B, C]) Transform[A, C] {
	return Transform[A, C]{
		A: u.A*t.A + u.C*t.B,
		B: u.B*t.A + u.D*t.B,
		C: u.A*t.C + u.C*t.D,
		D: u.B*t.C + u.D*t.D,
		E: u.A*t.E + u.C*t.F + u.E,
		F: u.B*t.E + u.D*t.F + u.F,
	}
}

// ThenTranslate appends a translation in the destination space.
func (t Transform[Src, Dst]) ThenTranslate(tx, ty float64) Transform[Src, Dst] {
	t.E += tx
	t.F += ty
	return t
}

// ThenScale appends a scaling about the destination origin.
func (t Transform[Src, Dst]) ThenScale(sx, sy float64) Transform[Src, Dst] {
	return Transform[Src, Dst]{A: t.A * sx, B: t.B * sy, C: t.C * sx, D: t.D * sy, E: t.E * sx, F: t.F * sy}
}

// Apply maps a point.
func (t Transform[Src, Dst]) Apply(p Point[Src]) Point[Dst] {
	return Point[Dst]{X: t.A*p.X + t.C*p.Y + t.E, Y: t.B*p.X + t.D*p.Y + t.F}
}

// ApplyVector maps a displacement; the translation part is ignored.
func (t Transform[Src, Dst]) ApplyVector(v Vector[Src]) Vector[Dst] {
	return Vector[Dst]{X: t.A*v.X + t.C*v.Y, Y: t.B*v.X + t.D*v.Y}
}

// ApplyAABB returns the box enclosing the four mapped corners of b.
func (t Transform[Src, Dst]) ApplyAABB(b AABB[Src]) AABB[Dst] {
	lo, hi := b.Min(), b.Max()
	box, _ := AABBOf(
		t.Apply(lo),
		t.Apply(Point[Src]{hi.X, lo.Y}),
		t.Apply(hi),
		t.Apply(Point[Src]{lo.X, hi.Y}),
	)
	return box
}

// Det returns the determinant of the linear part.
func (t Transform[Src, Dst]) Det() float64 { return t.A*t.D - t.B*t.C }

// Inverse returns the inverse map, or false when t is singular.
func (t Transform[Src, Dst]) Inverse() (Transform[Dst, Src], bool) {
	det := t.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Transform[Dst, Src]{}, false
	}
	a, b, c, d := t.D/det, -t.B/det, -t.C/det, t.A/det
	return Transform[Dst, Src]{
		A: a, B: b, C: c, D: d,
		E: -(a*t.E + c*t.F),
		F: -(b*t.E + d*t.F),
	}, true
}

// preservesAxes reports whether horizontal and vertical lines stay axis-aligned
// in the same orientation.
func (t Transform[Src, Dst]) preservesAxes() bool { return t.B == 0 && t.C == 0 }

// ApplyPath maps every command of p into Dst. Absolute points go through
// Apply and relative offsets through ApplyVector. Horizontal and vertical
// commands stay axis commands when t keeps the axes; otherwise they become
// line commands resolved against the cursor.
//
// Until the first drawing command the cursor sits at the implicit origin,
// which t may move. A leading relative or axis command is therefore emitted
// in absolute form so the result starts where t maps the source cursor. The
// same holds after a Close that returns to the implicit origin.
func (t Transform[Src, Dst]) ApplyPath(p Path[Src]) Path[Dst] {
	out := make([]LineCommand[Dst], 0, len(p.cmds))
	var k cursor[Src]
	anchored, moved := false, false
	for _, c := range p.cmds {
		from := k.cur
		abs := k.resolve(c)
		if c.op == OpClose {
			// Without a MoveTo the subpath start is the implicit origin again.
			anchored = moved
			out = append(out, Close[Dst]())
			continue
		}
		if !anchored {
			c = abs
			anchored = true
		}
		if abs.op == OpMoveTo {
			moved = true
		}
		out = append(out, t.applyCommand(c, from))
	}
	return Path[Dst]{cmds: out}
}

func (t Transform[Src, Dst]) applyCommand(c LineCommand[Src], from Point[Src]) LineCommand[Dst] {
	d := LineCommand[Dst]{op: c.op, s: c.s}
	switch {
	case c.op.IsAxis() && t.preservesAxes():
		switch c.op {
		case OpHorizontalTo:
			d.s = t.A*c.s + t.E
		case OpHorizontalBy:
			d.s = t.A * c.s
		case OpVerticalTo:
			d.s = t.D*c.s + t.F
		case OpVerticalBy:
			d.s = t.D * c.s
		}
		return d
	case c.op == OpHorizontalTo:
		return LineTo(t.Apply(Point[Src]{c.s, from.Y}))
	case c.op == OpHorizontalBy:
		return LineBy(t.ApplyVector(Vector[Src]{c.s, 0}))
	case c.op == OpVerticalTo:
		return LineTo(t.Apply(Point[Src]{from.X, c.s}))
	case c.op == OpVerticalBy:
		return LineBy(t.ApplyVector(Vector[Src]{0, c.s}))
	case c.op.IsRelative():
		for i := range c.op.arity() {
			d.pts[i] = Point[Dst](t.ApplyVector(Vector[Src](c.pts[i])))
		}
	default:
		for i := range c.op.arity() {
			d.pts[i] = t.Apply(c.pts[i])
		}
	}
	if c.op.IsArc() {
		d.arc = transformArc(t, c.arc)
	}
	return d
}
