/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "math"

// ArcShape holds the ellipse parameters of an SVG arc command. XAxisRotation
// is in degrees.
type ArcShape struct {
	RX, RY        float64
	XAxisRotation float64
	LargeArc      bool
	Sweep         bool
}

// appendArc appends cubic Béziers approximating the arc from p1 to p2
// (SVG 1.1 implementation notes F.6.5 and F.6.6). Each segment spans at
// most a quarter turn.
func appendArc[S Space](out []LineCommand[S], p1 Point[S], a ArcShape, p2 Point[S]) []LineCommand[S] {
	if p1 == p2 {
		return out
	}
	rx, ry := math.Abs(a.RX), math.Abs(a.RY)
	if rx == 0 || ry == 0 {
		return append(out, LineTo(p2))
	}
	sinPhi, cosPhi := math.Sincos(a.XAxisRotation * math.Pi / 180)

	dx, dy := (p1.X-p2.X)/2, (p1.Y-p2.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if l := x1*x1/(rx*rx) + y1*y1/(ry*ry); l > 1 {
		s := math.Sqrt(l)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(math.Max(0, num/den))
	if a.LargeArc == a.Sweep {
		coef = -coef
	}
	cxp := coef * rx * y1 / ry
	cyp := -coef * ry * x1 / rx
	cx := cosPhi*cxp - sinPhi*cyp + (p1.X+p2.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (p1.Y+p2.Y)/2

	theta := angleBetween(1, 0, (x1-cxp)/rx, (y1-cyp)/ry)
	delta := angleBetween((x1-cxp)/rx, (y1-cyp)/ry, (-x1-cxp)/rx, (-y1-cyp)/ry)
	if !a.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if a.Sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	onEllipse := func(ux, uy float64) Point[S] {
		return Point[S]{
			X: cx + rx*cosPhi*ux - ry*sinPhi*uy,
			Y: cy + rx*sinPhi*ux + ry*cosPhi*uy,
		}
	}
	t0 := theta
	for i := range n {
		t1 := t0 + step
		s0, c0 := math.Sincos(t0)
		s1, c1 := math.Sincos(t1)
		end := onEllipse(c1, s1)
		if i == n-1 {
			end = p2
		}
		out = append(out, CubicTo(
			onEllipse(c0-k*s0, s0+k*c0),
			onEllipse(c1+k*s1, s1-k*c1),
			end,
		))
		t0 = t1
	}
	return out
}

// angleBetween returns the signed angle from u to v.
func angleBetween(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

// transformArc maps the ellipse of an arc through the linear part of t. The
// new radii and rotation come from the eigen-decomposition of K·Kᵀ where K is
// the mapped ellipse basis; a mirroring map reverses the sweep.
func transformArc[Src, Dst Space](t Transform[Src, Dst], a ArcShape) ArcShape {
	sinPhi, cosPhi := math.Sincos(a.XAxisRotation * math.Pi / 180)
	ux := (t.A*cosPhi + t.C*sinPhi) * a.RX
	uy := (t.B*cosPhi + t.D*sinPhi) * a.RX
	vx := (-t.A*sinPhi + t.C*cosPhi) * a.RY
	vy := (-t.B*sinPhi + t.D*cosPhi) * a.RY

	m11 := ux*ux + vx*vx
	m12 := ux*uy + vx*vy
	m22 := uy*uy + vy*vy
	mean := (m11 + m22) / 2
	r := math.Hypot((m11-m22)/2, m12)

	out := a
	out.RX = math.Sqrt(mean + r)
	out.RY = math.Sqrt(math.Max(0, mean-r))
	out.XAxisRotation = 0.5 * math.Atan2(2*m12, m11-m22) * 180 / math.Pi
	if t.Det() < 0 {
		out.Sweep = !a.Sweep
	}
	return out
}
