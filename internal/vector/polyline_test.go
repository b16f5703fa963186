/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "testing"

func TestPolyline_LenAndGet(t *testing.T) {
	pts := []Point[N]{Pt[N](0, 0), Pt[N](0.5, 0.25), Pt[N](1, 1)}
	l := NewPolyline(pts...)
	if l.Len() != len(pts) {
		t.Fatalf("Len() = %d, want %d", l.Len(), len(pts))
	}
	for i, want := range pts {
		got, ok := l.Get(i)
		if !ok || got != want {
			t.Fatalf("Get(%d) = %v, %v; want %v", i, got, ok, want)
		}
	}
	if _, ok := l.Get(len(pts)); ok {
		t.Fatalf("Get past the end must fail")
	}
	if _, ok := l.Get(-1); ok {
		t.Fatalf("negative index must fail")
	}
}

func TestPolyline_PanicsOnTooFewPoints(t *testing.T) {
	for _, pts := range [][]Point[N]{nil, {Pt[N](0, 0)}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for %d points", len(pts))
				}
			}()
			NewPolyline(pts...)
		}()
	}
}

func TestPolyline_IsolatedFromCaller(t *testing.T) {
	pts := []Point[N]{Pt[N](0, 0), Pt[N](1, 1)}
	l := NewPolyline(pts...)
	pts[0] = Pt[N](9, 9)
	v := l.Vertices()
	v[1] = Pt[N](7, 7)
	if p, _ := l.Get(0); p != Pt[N](0, 0) {
		t.Fatalf("polyline shares storage with its input")
	}
	if p, _ := l.Get(1); p != Pt[N](1, 1) {
		t.Fatalf("polyline shares storage with Vertices()")
	}
}

func TestPolyline_Paths(t *testing.T) {
	l := NewPolyline(Pt[N](0, 0), Pt[N](1, 0), Pt[N](1, 1))
	paths := Collect[N](l)
	if len(paths) != 1 {
		t.Fatalf("expected one path, got %d", len(paths))
	}
	if got := paths[0].Data(); got != "M0 0 L1 0 L1 1" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestToPaths_Adapters(t *testing.T) {
	line := NewPolyline(Pt[N](0, 0), Pt[N](1, 1))
	circle := Circle(Pt[N](0.5, 0.5), 0.25)
	g := Group[N]{line, circle, PathList[N]{Line(Pt[N](0, 1), Pt[N](1, 0)), circle}}
	if n := len(Collect[N](g)); n != 4 {
		t.Fatalf("group yielded %d paths, want 4", n)
	}
	// restartable
	if n := len(Collect[N](g)); n != 4 {
		t.Fatalf("second pass yielded %d paths, want 4", n)
	}

	seq := PathSeq[N](func(yield func(Path[N]) bool) {
		for i := range 10 {
			if !yield(Line(Pt[N](0, float64(i)/10), Pt[N](1, float64(i)/10))) {
				return
			}
		}
	})
	count := 0
	for range seq.Paths() {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Fatalf("early break not honoured")
	}
	if n := len(Collect[N](seq)); n != 10 {
		t.Fatalf("seq yielded %d paths, want 10", n)
	}
}
