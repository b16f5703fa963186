/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

// Coordinate spaces are zero-size marker types carried as a type parameter on
// points, vectors, boxes and paths, so values from different frames of reference
// cannot be combined without an explicit Transform.

// Space identifies a 2D frame of reference.
type Space interface {
	SpaceName() string
}

// NormalSpace is the authoring frame whose valid domain is the unit square
// [0,1]x[0,1].
type NormalSpace struct{}

func (NormalSpace) SpaceName() string { return "normal" }

// CanvasSpace is the physical drawing frame, in the paper's unit.
type CanvasSpace struct{}

func (CanvasSpace) SpaceName() string { return "canvas" }

// SpaceName returns the name of S.
func SpaceName[S Space]() string {
	var s S
	return s.SpaceName()
}
