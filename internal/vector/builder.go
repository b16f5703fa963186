/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

// PathBuilder assembles a Path command by command.
//
//	p := vector.NewBuilder[vector.NormalSpace]().
//		MoveTo(0, 0).LineTo(1, 0).LineTo(1, 1).Close().Path()
type PathBuilder[S Space] struct {
	cmds []LineCommand[S]
}

func NewBuilder[S Space]() *PathBuilder[S] { return &PathBuilder[S]{} }

func (b *PathBuilder[S]) add(c LineCommand[S]) *PathBuilder[S] {
	b.cmds = append(b.cmds, c)
	return b
}

func (b *PathBuilder[S]) MoveTo(x, y float64) *PathBuilder[S] {
	return b.add(MoveTo(Point[S]{x, y}))
}
func (b *PathBuilder[S]) MoveBy(dx, dy float64) *PathBuilder[S] {
	return b.add(MoveBy(Vector[S]{dx, dy}))
}
func (b *PathBuilder[S]) LineTo(x, y float64) *PathBuilder[S] {
	return b.add(LineTo(Point[S]{x, y}))
}
func (b *PathBuilder[S]) LineBy(dx, dy float64) *PathBuilder[S] {
	return b.add(LineBy(Vector[S]{dx, dy}))
}
func (b *PathBuilder[S]) HorizontalTo(x float64) *PathBuilder[S] { return b.add(HorizontalTo[S](x)) }
func (b *PathBuilder[S]) VerticalTo(y float64) *PathBuilder[S]   { return b.add(VerticalTo[S](y)) }
func (b *PathBuilder[S]) QuadTo(cx, cy, x, y float64) *PathBuilder[S] {
	return b.add(QuadTo(Point[S]{cx, cy}, Point[S]{x, y}))
}
func (b *PathBuilder[S]) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder[S] {
	return b.add(CubicTo(Point[S]{c1x, c1y}, Point[S]{c2x, c2y}, Point[S]{x, y}))
}
func (b *PathBuilder[S]) ArcTo(shape ArcShape, x, y float64) *PathBuilder[S] {
	return b.add(ArcTo(shape, Point[S]{x, y}))
}
func (b *PathBuilder[S]) Close() *PathBuilder[S] { return b.add(Close[S]()) }

// Command appends an arbitrary command.
func (b *PathBuilder[S]) Command(c LineCommand[S]) *PathBuilder[S] { return b.add(c) }

// Path returns the built path. The builder can keep appending afterwards
// without affecting it.
func (b *PathBuilder[S]) Path() Path[S] { return NewPath(b.cmds...) }
