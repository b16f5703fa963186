/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "testing"

func TestShapes(t *testing.T) {
	if got := Rect(Pt[C](1, 2), 3, 4).Data(); got != "M1 2 L4 2 L4 6 L1 6 Z" {
		t.Fatalf("unexpected rect %q", got)
	}
	if got := RectOf(NewAABB(Pt[C](4, 6), Pt[C](1, 2))).Data(); got != "M1 2 L4 2 L4 6 L1 6 Z" {
		t.Fatalf("unexpected rect from box %q", got)
	}

	sq := RegularPolygon(Pt[C](0, 0), 1, 4, 0)
	if sq.Len() != 5 || sq.At(4).Op() != OpClose {
		t.Fatalf("unexpected square %q", sq.Data())
	}
	want := [][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for i, w := range want {
		if p := sq.At(i).Points()[0]; !nearPt(p, w[0], w[1]) {
			t.Fatalf("vertex %d = %v, want %v", i, p, w)
		}
	}
	if tri := RegularPolygon(Pt[C](0, 0), 1, 2, 0); tri.Len() != 4 {
		t.Fatalf("polygon with n<3 must be a triangle, got %d commands", tri.Len())
	}

	e := Ellipse(Pt[C](0, 0), 2, 1)
	b, _ := e.Bounds()
	if b.Width() != 4 || b.Height() != 2 {
		t.Fatalf("unexpected ellipse bounds %v", b)
	}
}

func TestPathBuilder(t *testing.T) {
	b := NewBuilder[N]().MoveTo(0, 0).LineTo(1, 0).Close()
	p := b.Path()
	b.LineTo(5, 5)
	if got := p.Data(); got != "M0 0 L1 0 Z" {
		t.Fatalf("unexpected built path %q", got)
	}
	if got := b.Path().Len(); got != 4 {
		t.Fatalf("builder should keep appending, got %d commands", got)
	}
	q := NewBuilder[N]().MoveTo(0, 0).QuadTo(1, 1, 2, 0).CubicTo(0, 0, 1, 1, 2, 2).
		HorizontalTo(3).VerticalTo(4).MoveBy(1, 1).LineBy(1, 0).
		ArcTo(ArcShape{RX: 1, RY: 1}, 5, 5).Command(Close[N]()).Path()
	if got := q.Data(); got != "M0 0 Q1 1 2 0 C0 0 1 1 2 2 H3 V4 m1 1 l1 0 A1 1 0 0 0 5 5 Z" {
		t.Fatalf("unexpected built path %q", got)
	}
}

func TestStyle_Colors(t *testing.T) {
	if c := (LinearRGB{R: 1}).SRGB(); c != (Color{255, 0, 0, 255}) {
		t.Fatalf("unexpected red %v", c)
	}
	if c := (LinearRGB{0.5, 0.5, 0.5}).SRGB(); c.Hex() != "#bcbcbc" {
		t.Fatalf("mid grey should encode to #bcbcbc, got %s", c.Hex())
	}
	if c := (LinearRGB{-1, 2, 0}).SRGB(); c.R != 0 || c.G != 255 {
		t.Fatalf("out of range components must clamp: %v", c)
	}
	r, g, b, a := White.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Fatalf("unexpected RGBA for white")
	}
	s := PenStroke(RedFineliner, 0.3)
	if s.Color.Hex() != "#ff0000" || s.Cap != CapRound || s.Width != 0.3 {
		t.Fatalf("unexpected pen stroke %+v", s)
	}
}
