/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import (
	"fmt"
	"iter"
	"slices"
	"strconv"

	"penplot/internal/units"
	"penplot/internal/vector"
)

// LayerKey identifies a layer of one Canvas. Keys are generational: a key
// stays invalid after its layer is removed, even when the slot is reused.
// The zero key is never issued.
type LayerKey struct {
	index uint32
	gen   uint32
}

// IsZero reports whether k is the zero key.
func (k LayerKey) IsZero() bool { return k.gen == 0 }

func (k LayerKey) String() string { return fmt.Sprintf("layer(%d.%d)", k.index, k.gen) }

// Layer is a bucket of canvas-space paths sharing one pen.
type Layer struct {
	key   LayerKey
	id    int
	color vector.LinearRGB
	nib   units.Millis
	paths []vector.Path[vector.CanvasSpace]
}

func (l *Layer) Key() LayerKey { return l.key }

// ID is the sequence number of the layer on its canvas, starting at 0. IDs are
// never reused.
func (l *Layer) ID() int { return l.id }

// Label is the 1-based name used in exported documents.
func (l *Layer) Label() string { return strconv.Itoa(l.id + 1) }

// Color is the pen color in linear RGB; exporters write it converted to sRGB.
func (l *Layer) Color() vector.LinearRGB { return l.color }

func (l *Layer) NibSize() units.Millis { return l.nib }
func (l *Layer) Len() int                { return len(l.paths) }

// RGB and NibSizeMM make a layer usable as the pen of another layer.
func (l *Layer) RGB() vector.LinearRGB { return l.color }
func (l *Layer) NibSizeMM() float64    { return float64(l.nib) }

// Paths yields the layer's paths in drawing order.
func (l *Layer) Paths() iter.Seq[vector.Path[vector.CanvasSpace]] {
	return func(yield func(vector.Path[vector.CanvasSpace]) bool) {
		for _, p := range l.paths {
			if !yield(p) {
				return
			}
		}
	}
}

type slot struct {
	gen   uint32
	layer *Layer
}

// arena stores layers in reusable slots and remembers creation order.
type arena struct {
	slots []slot
	free  []uint32
	order []LayerKey
}

func (a *arena) insert(l *Layer) LayerKey {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot{})
	}
	s := &a.slots[idx]
	s.gen++
	s.layer = l
	key := LayerKey{index: idx, gen: s.gen}
	l.key = key
	a.order = append(a.order, key)
	return key
}

func (a *arena) get(k LayerKey) (*Layer, bool) {
	if k.gen == 0 || int(k.index) >= len(a.slots) {
		return nil, false
	}
	s := a.slots[k.index]
	if s.gen != k.gen || s.layer == nil {
		return nil, false
	}
	return s.layer, true
}

func (a *arena) remove(k LayerKey) bool {
	if _, ok := a.get(k); !ok {
		return false
	}
	a.slots[k.index].layer = nil
	a.free = append(a.free, k.index)
	a.order = slices.DeleteFunc(a.order, func(o LayerKey) bool { return o == k })
	return true
}

func (a *arena) len() int { return len(a.order) }

// all yields live layers in creation order.
func (a *arena) all() iter.Seq2[LayerKey, *Layer] {
	return func(yield func(LayerKey, *Layer) bool) {
		for _, k := range a.order {
			if !yield(k, a.slots[k.index].layer) {
				return
			}
		}
	}
}
