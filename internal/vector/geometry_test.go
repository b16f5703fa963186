/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"math"
	"testing"
)

type (
	N = NormalSpace
	C = CanvasSpace
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func nearPt[S Space](p Point[S], x, y float64) bool { return near(p.X, x) && near(p.Y, y) }

func TestAABB_NormalizesCorners(t *testing.T) {
	b := NewAABB(Pt[C](5, 7), Pt[C](1, 2))
	if b.Min() != Pt[C](1, 2) || b.Max() != Pt[C](5, 7) {
		t.Fatalf("unexpected corners: %v", b)
	}
	if b.Width() != 4 || b.Height() != 5 {
		t.Fatalf("unexpected size: %v x %v", b.Width(), b.Height())
	}
}

func TestAABB_ContainsAndInset(t *testing.T) {
	b := NewAABB(Pt[C](10, 20), Pt[C](110, 70))
	if !b.Contains(Pt[C](10, 20)) || !b.Contains(Pt[C](110, 70)) {
		t.Fatalf("expected edge points to be contained")
	}
	if b.Contains(Pt[C](9, 20)) {
		t.Fatalf("point left of box must not be contained")
	}
	in := b.Inset(5, 5)
	if in.Min() != Pt[C](15, 25) || in.Width() != 90 || in.Height() != 40 {
		t.Fatalf("unexpected inset: %v", in)
	}
	if c := b.Center(); c != Pt[C](60, 45) {
		t.Fatalf("unexpected center: %v", c)
	}
}

func TestAABBOf_SkipsNaN(t *testing.T) {
	b, ok := AABBOf(Pt[C](math.NaN(), 0), Pt[C](1, 1), Pt[C](3, -1))
	if !ok {
		t.Fatalf("expected a box")
	}
	if b.Min() != Pt[C](1, -1) || b.Max() != Pt[C](3, 1) {
		t.Fatalf("unexpected box: %v", b)
	}
	b, ok = AABBOf(Pt[C](math.NaN(), 5), Pt[C](1, 1), Pt[C](3, math.NaN()))
	if !ok || b.Min() != Pt[C](1, 1) || b.Max() != Pt[C](3, 5) {
		t.Fatalf("valid coordinates of partly-NaN points must count: %v %v", b, ok)
	}
	if _, ok := AABBOf(Pt[C](1, math.NaN()), Pt[C](2, math.NaN())); ok {
		t.Fatalf("no y coordinate must not yield a box")
	}
	if _, ok := AABBOf[C](); ok {
		t.Fatalf("empty input must not yield a box")
	}
	if _, ok := AABBOf(Pt[C](math.NaN(), math.NaN())); ok {
		t.Fatalf("all-NaN input must not yield a box")
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(Pt[C](0, 0), Pt[C](1, 1))
	b := NewAABB(Pt[C](-2, 0.5), Pt[C](0.5, 3))
	u := a.Union(b)
	if u.Min() != Pt[C](-2, 0) || u.Max() != Pt[C](1, 3) {
		t.Fatalf("unexpected union: %v", u)
	}
}

func TestTransform_Then(t *testing.T) {
	m := Then(Scaling[N, C](2, 3), Translation[C, C](10, 5))
	p := m.Apply(Pt[N](1, 1))
	if p.X != 12 || p.Y != 8 { // (1*2+10, 1*3+5)
		t.Fatalf("unexpected transform result: %v", p)
	}
	if v := m.ApplyVector(Vec[N](1, 1)); v.X != 2 || v.Y != 3 {
		t.Fatalf("vectors must ignore translation: %v", v)
	}
}

func TestTransform_ThenHelpers(t *testing.T) {
	m := Scaling[N, C](2, 3).ThenTranslate(10, 5)
	if p := m.Apply(Pt[N](1, 1)); p.X != 12 || p.Y != 8 {
		t.Fatalf("ThenTranslate: %v", p)
	}
	m = Translation[N, C](1, 1).ThenScale(2, 4)
	if p := m.Apply(Pt[N](1, 1)); p.X != 4 || p.Y != 8 {
		t.Fatalf("ThenScale: %v", p)
	}
}

func TestTransform_InverseRoundTrip(t *testing.T) {
	m := Then(Rotation[N, N](0.3), Translation[N, C](4, -2)).ThenScale(2, 0.5)
	inv, ok := m.Inverse()
	if !ok {
		t.Fatalf("expected invertible transform")
	}
	for _, p := range []Point[N]{Pt[N](0, 0), Pt[N](1, 0.5), Pt[N](-3, 7)} {
		q := inv.Apply(m.Apply(p))
		if !nearPt(q, p.X, p.Y) {
			t.Fatalf("round trip of %v gave %v", p, q)
		}
	}
	if _, ok := Scaling[N, C](0, 1).Inverse(); ok {
		t.Fatalf("singular transform must not invert")
	}
}

func TestTransform_ApplyAABB(t *testing.T) {
	b := NewAABB(Pt[N](0, 0), Pt[N](2, 1))
	r := Rotation[N, N](math.Pi / 2).ApplyAABB(b)
	if !nearPt(r.Min(), -1, 0) || !nearPt(r.Max(), 0, 2) {
		t.Fatalf("unexpected rotated box: %v", r)
	}
}

func TestSpaceName(t *testing.T) {
	if SpaceName[N]() != "normal" || SpaceName[C]() != "canvas" {
		t.Fatalf("unexpected space names")
	}
	if s := Pt[C](1, 2).String(); s != "(1, 2)@canvas" {
		t.Fatalf("unexpected point string %q", s)
	}
}
