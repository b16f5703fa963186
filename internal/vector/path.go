/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Op identifies a path command. Relative variants ("By") directly follow their
// absolute counterparts.
type Op uint8

const (
	OpMoveTo Op = iota
	OpMoveBy
	OpLineTo
	OpLineBy
	OpHorizontalTo
	OpHorizontalBy
	OpVerticalTo
	OpVerticalBy
	OpCubicTo // two controls and end
	OpCubicBy
	OpSmoothCubicTo // second control and end
	OpSmoothCubicBy
	OpQuadTo // control and end
	OpQuadBy
	OpSmoothQuadTo // end
	OpSmoothQuadBy
	OpArcTo
	OpArcBy
	OpClose
)

const opLetters = "MmLlHhVvCcSsQqTtAaZ"

var opNames = [...]string{
	"MoveTo", "MoveBy", "LineTo", "LineBy",
	"HorizontalTo", "HorizontalBy", "VerticalTo", "VerticalBy",
	"CubicTo", "CubicBy", "SmoothCubicTo", "SmoothCubicBy",
	"QuadTo", "QuadBy", "SmoothQuadTo", "SmoothQuadBy",
	"ArcTo", "ArcBy", "Close",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Letter returns the SVG path-data letter of o.
func (o Op) Letter() byte { return opLetters[o] }

// IsRelative reports whether the command's coordinates are offsets from the
// current point.
func (o Op) IsRelative() bool { return o != OpClose && o%2 == 1 }

// IsAxis reports whether o is a horizontal or vertical command.
func (o Op) IsAxis() bool { return o >= OpHorizontalTo && o <= OpVerticalBy }

// IsArc reports whether o is an elliptical arc.
func (o Op) IsArc() bool { return o == OpArcTo || o == OpArcBy }

// Absolute returns the absolute counterpart of a relative op.
func (o Op) Absolute() Op {
	if o.IsRelative() {
		return o - 1
	}
	return o
}

// arity is the number of points a command carries.
func (o Op) arity() int {
	switch o.Absolute() {
	case OpMoveTo, OpLineTo, OpSmoothQuadTo, OpArcTo:
		return 1
	case OpSmoothCubicTo, OpQuadTo:
		return 2
	case OpCubicTo:
		return 3
	}
	return 0
}

// LineCommand is one drawing instruction of a Path. Absolute commands carry
// points in S, relative commands carry offsets from the current point, axis
// commands carry a single coordinate.
type LineCommand[S Space] struct {
	op  Op
	pts [3]Point[S]
	s   float64
	arc ArcShape
}

func absCmd[S Space](op Op, pts ...Point[S]) LineCommand[S] {
	c := LineCommand[S]{op: op}
	copy(c.pts[:], pts)
	return c
}

func relCmd[S Space](op Op, vs ...Vector[S]) LineCommand[S] {
	c := LineCommand[S]{op: op}
	for i, v := range vs {
		c.pts[i] = Point[S](v)
	}
	return c
}

func MoveTo[S Space](p Point[S]) LineCommand[S]  { return absCmd(OpMoveTo, p) }
func MoveBy[S Space](v Vector[S]) LineCommand[S] { return relCmd(OpMoveBy, v) }
func LineTo[S Space](p Point[S]) LineCommand[S]  { return absCmd(OpLineTo, p) }
func LineBy[S Space](v Vector[S]) LineCommand[S] { return relCmd(OpLineBy, v) }

func HorizontalTo[S Space](x float64) LineCommand[S] {
	return LineCommand[S]{op: OpHorizontalTo, s: x}
}

func HorizontalBy[S Space](dx float64) LineCommand[S] {
	return LineCommand[S]{op: OpHorizontalBy, s: dx}
}

func VerticalTo[S Space](y float64) LineCommand[S] {
	return LineCommand[S]{op: OpVerticalTo, s: y}
}

func VerticalBy[S Space](dy float64) LineCommand[S] {
	return LineCommand[S]{op: OpVerticalBy, s: dy}
}

// CubicTo draws a cubic Bézier through controls c1, c2 to end.
func CubicTo[S Space](c1, c2, end Point[S]) LineCommand[S] {
	return absCmd(OpCubicTo, c1, c2, end)
}

func CubicBy[S Space](c1, c2, end Vector[S]) LineCommand[S] {
	return relCmd(OpCubicBy, c1, c2, end)
}

// SmoothCubicTo continues a cubic; its first control is the reflection of the
// previous curve's second control.
func SmoothCubicTo[S Space](c2, end Point[S]) LineCommand[S] {
	return absCmd(OpSmoothCubicTo, c2, end)
}

func SmoothCubicBy[S Space](c2, end Vector[S]) LineCommand[S] {
	return relCmd(OpSmoothCubicBy, c2, end)
}

func QuadTo[S Space](c, end Point[S]) LineCommand[S]  { return absCmd(OpQuadTo, c, end) }
func QuadBy[S Space](c, end Vector[S]) LineCommand[S] { return relCmd(OpQuadBy, c, end) }

func SmoothQuadTo[S Space](end Point[S]) LineCommand[S]  { return absCmd(OpSmoothQuadTo, end) }
func SmoothQuadBy[S Space](end Vector[S]) LineCommand[S] { return relCmd(OpSmoothQuadBy, end) }

// ArcTo draws an elliptical arc to end.
func ArcTo[S Space](shape ArcShape, end Point[S]) LineCommand[S] {
	c := absCmd(OpArcTo, end)
	c.arc = shape
	return c
}

func ArcBy[S Space](shape ArcShape, end Vector[S]) LineCommand[S] {
	c := relCmd(OpArcBy, end)
	c.arc = shape
	return c
}

// Close returns to the start of the current subpath.
func Close[S Space]() LineCommand[S] { return LineCommand[S]{op: OpClose} }

func (c LineCommand[S]) Op() Op { return c.op }

// IsRelative reports whether c is expressed relative to the current point.
func (c LineCommand[S]) IsRelative() bool { return c.op.IsRelative() }

// Points returns the absolute points an absolute move, line, curve or arc
// command carries, controls first and end last. It returns nil for relative,
// axis and close commands.
func (c LineCommand[S]) Points() []Point[S] {
	if c.op.IsRelative() || c.op.IsAxis() {
		return nil
	}
	n := c.op.arity()
	if n == 0 {
		return nil
	}
	return slices.Clone(c.pts[:n])
}

// Offsets returns the offsets a relative move, line, curve or arc command
// carries. It returns nil for all other commands.
func (c LineCommand[S]) Offsets() []Vector[S] {
	if !c.op.IsRelative() || c.op.IsAxis() {
		return nil
	}
	n := c.op.arity()
	out := make([]Vector[S], n)
	for i := range n {
		out[i] = Vector[S](c.pts[i])
	}
	return out
}

// Scalar returns the coordinate of a horizontal or vertical command.
func (c LineCommand[S]) Scalar() (float64, bool) {
	if !c.op.IsAxis() {
		return 0, false
	}
	return c.s, true
}

// Arc returns the ellipse parameters of an arc command.
func (c LineCommand[S]) Arc() (ArcShape, bool) {
	if !c.op.IsArc() {
		return ArcShape{}, false
	}
	return c.arc, true
}

// String renders c as an SVG path-data segment.
func (c LineCommand[S]) String() string {
	var b strings.Builder
	c.writeTo(&b)
	return b.String()
}

func (c LineCommand[S]) writeTo(b *strings.Builder) {
	b.WriteByte(c.op.Letter())
	var args []float64
	switch {
	case c.op == OpClose:
	case c.op.IsAxis():
		args = append(args, c.s)
	case c.op.IsArc():
		args = append(args, c.arc.RX, c.arc.RY, c.arc.XAxisRotation, flag(c.arc.LargeArc), flag(c.arc.Sweep), c.pts[0].X, c.pts[0].Y)
	default:
		for i := range c.op.arity() {
			args = append(args, c.pts[i].X, c.pts[i].Y)
		}
	}
	for i, v := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNum(v))
	}
}

func flag(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

func formatNum(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Path is an immutable sequence of commands in space S.
type Path[S Space] struct {
	cmds []LineCommand[S]
}

// NewPath copies cmds into a new path.
func NewPath[S Space](cmds ...LineCommand[S]) Path[S] {
	return Path[S]{cmds: slices.Clone(cmds)}
}

func (p Path[S]) Len() int                   { return len(p.cmds) }
func (p Path[S]) At(i int) LineCommand[S]    { return p.cmds[i] }
func (p Path[S]) Commands() []LineCommand[S] { return slices.Clone(p.cmds) }

// All iterates over the commands with their index.
func (p Path[S]) All() iter.Seq2[int, LineCommand[S]] { return slices.All(p.cmds) }

// Append returns a new path with cmds added at the end.
func (p Path[S]) Append(cmds ...LineCommand[S]) Path[S] {
	return Path[S]{cmds: slices.Concat(p.cmds, cmds)}
}

// Paths yields p itself.
func (p Path[S]) Paths() iter.Seq[Path[S]] {
	return func(yield func(Path[S]) bool) { yield(p) }
}

// Data renders the path as an SVG "d" attribute value.
func (p Path[S]) Data() string {
	var b strings.Builder
	for i, c := range p.cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		c.writeTo(&b)
	}
	return b.String()
}

func (p Path[S]) String() string { return p.Data() }

// Absolute resolves relative and axis commands against the implicit cursor,
// which starts at the origin and returns to the subpath start on Close. Smooth
// curves and arcs keep their kind.
func (p Path[S]) Absolute() Path[S] {
	out := make([]LineCommand[S], 0, len(p.cmds))
	var k cursor[S]
	for _, c := range p.cmds {
		out = append(out, k.resolve(c))
	}
	return Path[S]{cmds: out}
}

// Simplified returns an equivalent path that uses only absolute MoveTo,
// LineTo, QuadTo, CubicTo and Close. Smooth curves get their reflected control
// point and arcs are approximated by cubic Béziers.
func (p Path[S]) Simplified() Path[S] {
	out := make([]LineCommand[S], 0, len(p.cmds))
	var (
		k           cursor[S]
		cubic, quad Point[S]
	)
	prev := OpMoveTo
	for _, c := range p.cmds {
		from := k.cur
		a := k.resolve(c)
		switch a.op {
		case OpCubicTo:
			cubic = a.pts[1]
		case OpSmoothCubicTo:
			c1 := from
			if prev == OpCubicTo || prev == OpSmoothCubicTo {
				c1 = reflect(cubic, from)
			}
			cubic = a.pts[0]
			a = CubicTo(c1, a.pts[0], a.pts[1])
			prev = OpSmoothCubicTo
			out = append(out, a)
			continue
		case OpQuadTo:
			quad = a.pts[0]
		case OpSmoothQuadTo:
			ctl := from
			if prev == OpQuadTo || prev == OpSmoothQuadTo {
				ctl = reflect(quad, from)
			}
			quad = ctl
			a = QuadTo(ctl, a.pts[0])
			prev = OpSmoothQuadTo
			out = append(out, a)
			continue
		case OpArcTo:
			out = appendArc(out, from, a.arc, a.pts[0])
			prev = OpArcTo
			continue
		}
		prev = a.op
		out = append(out, a)
	}
	return Path[S]{cmds: out}
}

// Bounds returns the box around every anchor and control point of the
// simplified path. ok is false for a path without points.
func (p Path[S]) Bounds() (box AABB[S], ok bool) {
	var e Extent[S]
	for _, c := range p.Simplified().cmds {
		for i := range c.op.arity() {
			e.Add(c.pts[i])
		}
	}
	return e.Box()
}

func reflect[S Space](ctl, about Point[S]) Point[S] {
	return Point[S]{2*about.X - ctl.X, 2*about.Y - ctl.Y}
}

// cursor tracks the current point and subpath start while walking a path.
type cursor[S Space] struct {
	cur, start Point[S]
}

// resolve returns the absolute form of c and advances the cursor past it.
// Horizontal and vertical commands become LineTo.
func (k *cursor[S]) resolve(c LineCommand[S]) LineCommand[S] {
	switch c.op {
	case OpClose:
		k.cur = k.start
		return c
	case OpHorizontalTo:
		c = LineTo(Point[S]{c.s, k.cur.Y})
	case OpHorizontalBy:
		c = LineTo(Point[S]{k.cur.X + c.s, k.cur.Y})
	case OpVerticalTo:
		c = LineTo(Point[S]{k.cur.X, c.s})
	case OpVerticalBy:
		c = LineTo(Point[S]{k.cur.X, k.cur.Y + c.s})
	default:
		if c.op.IsRelative() {
			for i := range c.op.arity() {
				c.pts[i] = k.cur.Add(Vector[S](c.pts[i]))
			}
			c.op = c.op.Absolute()
		}
	}
	k.cur = c.pts[c.op.arity()-1]
	if c.op == OpMoveTo {
		k.start = k.cur
	}
	return c
}
