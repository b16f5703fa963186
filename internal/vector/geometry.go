/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"fmt"
	"math"
)

// Point is a position in space S.
type Point[S Space] struct{ X, Y float64 }

// Pt builds a point in space S.
func Pt[S Space](x, y float64) Point[S] { return Point[S]{X: x, Y: y} }

func (p Point[S]) Add(v Vector[S]) Point[S] { return Point[S]{p.X + v.X, p.Y + v.Y} }
func (p Point[S]) Sub(q Point[S]) Vector[S] { return Vector[S]{p.X - q.X, p.Y - q.Y} }

// Lerp interpolates between p and q; t=0 yields p and t=1 yields q.
func (p Point[S]) Lerp(q Point[S], t float64) Point[S] {
	return Point[S]{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

// ToVector reinterprets p as an offset from the origin.
func (p Point[S]) ToVector() Vector[S] { return Vector[S](p) }

// IsNaN reports whether either coordinate is NaN.
func (p Point[S]) IsNaN() bool { return math.IsNaN(p.X) || math.IsNaN(p.Y) }

func (p Point[S]) String() string {
	return fmt.Sprintf("(%g, %g)@%s", p.X, p.Y, SpaceName[S]())
}

// Vector is a displacement in space S.
type Vector[S Space] struct{ X, Y float64 }

// Vec builds a vector in space S.
func Vec[S Space](x, y float64) Vector[S] { return Vector[S]{X: x, Y: y} }

func (v Vector[S]) Add(w Vector[S]) Vector[S] { return Vector[S]{v.X + w.X, v.Y + w.Y} }
func (v Vector[S]) Sub(w Vector[S]) Vector[S] { return Vector[S]{v.X - w.X, v.Y - w.Y} }
func (v Vector[S]) Scale(k float64) Vector[S] { return Vector[S]{v.X * k, v.Y * k} }
func (v Vector[S]) Neg() Vector[S]            { return Vector[S]{-v.X, -v.Y} }
func (v Vector[S]) Length() float64           { return math.Hypot(v.X, v.Y) }
func (v Vector[S]) Dot(w Vector[S]) float64   { return v.X*w.X + v.Y*w.Y }
func (v Vector[S]) Cross(w Vector[S]) float64 { return v.X*w.Y - v.Y*w.X }
func (v Vector[S]) ToPoint() Point[S]         { return Point[S](v) }

// Angle returns the direction of v in radians.
func (v Vector[S]) Angle() float64 { return math.Atan2(v.Y, v.X) }

// AABB is an axis-aligned bounding box in space S. The corners are normalized
// at construction so that Min is component-wise <= Max. An AABB is never
// mutated; operations return a new box.
type AABB[S Space] struct {
	min, max Point[S]
}

// NewAABB builds the box spanned by two opposite corners given in any order.
func NewAABB[S Space](a, b Point[S]) AABB[S] {
	return AABB[S]{
		min: Point[S]{MinOrd(a.X, b.X), MinOrd(a.Y, b.Y)},
		max: Point[S]{MaxOrd(a.X, b.X), MaxOrd(a.Y, b.Y)},
	}
}

// AABBOf returns the smallest box containing pts. ok is false when pts holds no
// point with finite ordering (empty or all NaN).
func AABBOf[S Space](pts ...Point[S]) (box AABB[S], ok bool) {
	var e Extent[S]
	for _, p := range pts {
		e.Add(p)
	}
	return e.Box()
}

func (b AABB[S]) Min() Point[S]   { return b.min }
func (b AABB[S]) Max() Point[S]   { return b.max }
func (b AABB[S]) Width() float64  { return b.max.X - b.min.X }
func (b AABB[S]) Height() float64 { return b.max.Y - b.min.Y }

// Center returns the midpoint of the box.
func (b AABB[S]) Center() Point[S] { return b.min.Lerp(b.max, 0.5) }

// Contains reports whether p lies inside the box or on its boundary.
func (b AABB[S]) Contains(p Point[S]) bool {
	return p.X >= b.min.X && p.Y >= b.min.Y && p.X <= b.max.X && p.Y <= b.max.Y
}

// Union returns the minimal box containing both.
func (b AABB[S]) Union(o AABB[S]) AABB[S] {
	return AABB[S]{
		min: Point[S]{MinOrd(b.min.X, o.min.X), MinOrd(b.min.Y, o.min.Y)},
		max: Point[S]{MaxOrd(b.max.X, o.max.X), MaxOrd(b.max.Y, o.max.Y)},
	}
}

// Inset shrinks the box by dx, dy on every side; negative values grow it.
func (b AABB[S]) Inset(dx, dy float64) AABB[S] {
	return NewAABB(Point[S]{b.min.X + dx, b.min.Y + dy}, Point[S]{b.max.X - dx, b.max.Y - dy})
}

func (b AABB[S]) String() string {
	return fmt.Sprintf("[%g %g %g %g]@%s", b.min.X, b.min.Y, b.Width(), b.Height(), SpaceName[S]())
}

// Extent accumulates a running bounding box. The zero value is empty and uses
// +Inf/-Inf sentinels. A NaN coordinate is skipped on its own axis; the other
// coordinate of the point still counts.
type Extent[S Space] struct {
	minX, minY, maxX, maxY float64
	nx, ny                 int
}

// Add grows the extent to include p.
func (e *Extent[S]) Add(p Point[S]) {
	if !math.IsNaN(p.X) {
		if e.nx == 0 {
			e.minX, e.maxX = math.Inf(1), math.Inf(-1)
		}
		e.minX = MinOrd(e.minX, p.X)
		e.maxX = MaxOrd(e.maxX, p.X)
		e.nx++
	}
	if !math.IsNaN(p.Y) {
		if e.ny == 0 {
			e.minY, e.maxY = math.Inf(1), math.Inf(-1)
		}
		e.minY = MinOrd(e.minY, p.Y)
		e.maxY = MaxOrd(e.maxY, p.Y)
		e.ny++
	}
}

// Empty reports whether the extent lacks a coordinate on either axis.
func (e *Extent[S]) Empty() bool { return e.nx == 0 || e.ny == 0 }

// Box returns the accumulated box, or false while either axis is empty.
func (e *Extent[S]) Box() (AABB[S], bool) {
	if e.Empty() {
		return AABB[S]{}, false
	}
	return AABB[S]{min: Point[S]{e.minX, e.minY}, max: Point[S]{e.maxX, e.maxY}}, true
}
