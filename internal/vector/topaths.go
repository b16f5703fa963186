/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "iter"

// ToPaths is implemented by anything that can be drawn: it yields a finite
// sequence of paths in space S. Calling Paths again restarts the sequence.
type ToPaths[S Space] interface {
	Paths() iter.Seq[Path[S]]
}

// Group draws several drawables as one.
type Group[S Space] []ToPaths[S]

func (g Group[S]) Paths() iter.Seq[Path[S]] {
	return func(yield func(Path[S]) bool) {
		for _, d := range g {
			for p := range d.Paths() {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// PathSeq adapts a path generator to ToPaths.
type PathSeq[S Space] iter.Seq[Path[S]]

func (s PathSeq[S]) Paths() iter.Seq[Path[S]] { return iter.Seq[Path[S]](s) }

// PathList adapts a slice of paths.
type PathList[S Space] []Path[S]

func (ps PathList[S]) Paths() iter.Seq[Path[S]] {
	return func(yield func(Path[S]) bool) {
		for _, p := range ps {
			if !yield(p) {
				return
			}
		}
	}
}

// Collect drains a drawable into a slice.
func Collect[S Space](d ToPaths[S]) []Path[S] {
	var out []Path[S]
	for p := range d.Paths() {
		out = append(out, p)
	}
	return out
}
