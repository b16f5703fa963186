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
	"iter"
	"slices"
)

// Polyline is an ordered run of at least two points joined by straight
// segments.
type Polyline[S Space] struct {
	pts []Point[S]
}

// NewPolyline copies pts into a polyline. It panics when fewer than two points
// are given.
func NewPolyline[S Space](pts ...Point[S]) Polyline[S] {
	if len(pts) < 2 {
		panic(fmt.Sprintf("vector: polyline needs at least 2 points, got %d", len(pts)))
	}
	return Polyline[S]{pts: slices.Clone(pts)}
}

// Len returns the number of vertices.
func (l Polyline[S]) Len() int { return len(l.pts) }

// Get returns the i-th vertex, or false when i is out of range.
func (l Polyline[S]) Get(i int) (Point[S], bool) {
	if i < 0 || i >= len(l.pts) {
		return Point[S]{}, false
	}
	return l.pts[i], true
}

// Vertices returns a copy of the points.
func (l Polyline[S]) Vertices() []Point[S] { return slices.Clone(l.pts) }

// Path converts the polyline into a move followed by absolute line commands.
func (l Polyline[S]) Path() Path[S] {
	cmds := make([]LineCommand[S], 0, len(l.pts))
	cmds = append(cmds, MoveTo(l.pts[0]))
	for _, p := range l.pts[1:] {
		cmds = append(cmds, LineTo(p))
	}
	return Path[S]{cmds: cmds}
}

// Paths yields the polyline as a single path.
func (l Polyline[S]) Paths() iter.Seq[Path[S]] {
	return func(yield func(Path[S]) bool) {
		yield(l.Path())
	}
}
