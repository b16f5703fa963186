/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "math"

// kappa is the control-point distance for a quarter circle of radius 1.
const kappa = 0.5522847498307936

// Rect returns a closed rectangle path with corner at min.
func Rect[S Space](min Point[S], w, h float64) Path[S] {
	return NewPath(
		MoveTo(min),
		LineTo(Point[S]{min.X + w, min.Y}),
		LineTo(Point[S]{min.X + w, min.Y + h}),
		LineTo(Point[S]{min.X, min.Y + h}),
		Close[S](),
	)
}

// RectOf returns the outline of b.
func RectOf[S Space](b AABB[S]) Path[S] { return Rect(b.Min(), b.Width(), b.Height()) }

// Circle returns a closed circle built from four cubic Béziers.
func Circle[S Space](center Point[S], r float64) Path[S] {
	return Ellipse(center, r, r)
}

// Ellipse returns a closed axis-aligned ellipse built from four cubic Béziers.
func Ellipse[S Space](center Point[S], rx, ry float64) Path[S] {
	cx, cy := center.X, center.Y
	ox, oy := rx*kappa, ry*kappa
	return NewPath(
		MoveTo(Point[S]{cx + rx, cy}),
		CubicTo(Point[S]{cx + rx, cy + oy}, Point[S]{cx + ox, cy + ry}, Point[S]{cx, cy + ry}),
		CubicTo(Point[S]{cx - ox, cy + ry}, Point[S]{cx - rx, cy + oy}, Point[S]{cx - rx, cy}),
		CubicTo(Point[S]{cx - rx, cy - oy}, Point[S]{cx - ox, cy - ry}, Point[S]{cx, cy - ry}),
		CubicTo(Point[S]{cx + ox, cy - ry}, Point[S]{cx + rx, cy - oy}, Point[S]{cx + rx, cy}),
		Close[S](),
	)
}

// RegularPolygon returns a closed polygon with n vertices on a circle of
// radius r, the first vertex at angle rot (radians). n below 3 is raised to 3.
func RegularPolygon[S Space](center Point[S], r float64, n int, rot float64) Path[S] {
	n = max(n, 3)
	cmds := make([]LineCommand[S], 0, n+1)
	for i := range n {
		s, c := math.Sincos(rot + 2*math.Pi*float64(i)/float64(n))
		p := Point[S]{center.X + r*c, center.Y + r*s}
		if i == 0 {
			cmds = append(cmds, MoveTo(p))
		} else {
			cmds = append(cmds, LineTo(p))
		}
	}
	cmds = append(cmds, Close[S]())
	return Path[S]{cmds: cmds}
}

// Line returns a single straight segment.
func Line[S Space](a, b Point[S]) Path[S] {
	return NewPath(MoveTo(a), LineTo(b))
}
