/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package canvas holds layered drawings on a sheet of paper and turns them
// into SVG documents.
package canvas

import (
	"iter"
	"log/slog"

	applog "penplot/internal/log"
	"penplot/internal/units"
	"penplot/internal/vector"
)

type (
	normal = vector.NormalSpace
	space  = vector.CanvasSpace
)

// Canvas is a drawing on one sheet of paper. It owns its layers and its view,
// the region of canvas space that ends up in exported documents. A Canvas is
// not safe for concurrent use.
type Canvas[U units.Unit] struct {
	paper  units.Paper[U]
	view   vector.AABB[space]
	layers arena
	nextID int
	log    *slog.Logger
}

// New returns an empty canvas whose view covers the whole sheet.
func New[U units.Unit](paper units.Paper[U]) *Canvas[U] {
	c := &Canvas[U]{
		paper: paper,
		view:  vector.NewAABB(vector.Pt[space](0, 0), vector.Pt[space](float64(paper.Width), float64(paper.Height))),
		log:   applog.WithComponent("canvas"),
	}
	c.log.Debug("canvas created", slog.String("paper", paper.String()))
	return c
}

func (c *Canvas[U]) Paper() units.Paper[U] { return c.paper }

func (c *Canvas[U]) View() vector.AABB[space] { return c.view }

// SetView replaces the view.
func (c *Canvas[U]) SetView(v vector.AABB[space]) { c.view = v }

// Width is the drawable width of the paper.
func (c *Canvas[U]) Width() U { return c.paper.DrawableWidth() }

// Height is the drawable height of the paper.
func (c *Canvas[U]) Height() U { return c.paper.DrawableHeight() }

// DrawableSize returns Width and Height as plain numbers in the paper unit.
func (c *Canvas[U]) DrawableSize() (w, h float64) { return float64(c.Width()), float64(c.Height()) }

// CanvasTransform projects the unit square onto the drawable area: scale by
// the drawable size, then translate by the left and top margins.
func (c *Canvas[U]) CanvasTransform() vector.Transform[normal, space] {
	return vector.Scaling[normal, space](float64(c.Width()), float64(c.Height())).
		ThenTranslate(float64(c.paper.MarginLeft), float64(c.paper.MarginTop))
}

// MarginTransform shifts canvas-space input by the left and top margins.
func (c *Canvas[U]) MarginTransform() vector.Transform[space, space] {
	return vector.Translation[space, space](float64(c.paper.MarginLeft), float64(c.paper.MarginTop))
}

// CreateLayer registers an empty layer styled by pen. The pen's color and nib
// size are captured once.
func (c *Canvas[U]) CreateLayer(pen vector.Pen) LayerKey {
	l := &Layer{
		id:    c.nextID,
		color: pen.RGB(),
		nib:   units.Millis(pen.NibSizeMM()),
	}
	c.nextID++
	key := c.layers.insert(l)
	c.log.Debug("layer created", slog.String("key", key.String()), slog.Int("id", l.id))
	return key
}

// RemoveLayer deletes a layer and its paths. It returns a *LayerError wrapping
// ErrUnknownLayer when key is not live.
func (c *Canvas[U]) RemoveLayer(key LayerKey) error {
	if !c.layers.remove(key) {
		return &LayerError{Op: "remove", Key: key}
	}
	c.log.Debug("layer removed", slog.String("key", key.String()))
	return nil
}

// Layer looks up a live layer.
func (c *Canvas[U]) Layer(key LayerKey) (*Layer, bool) { return c.layers.get(key) }

// Layers yields the live layers in creation order.
func (c *Canvas[U]) Layers() iter.Seq2[LayerKey, *Layer] { return c.layers.all() }

// LayerCount returns the number of live layers.
func (c *Canvas[U]) LayerCount() int { return c.layers.len() }

// mustLayer panics with a *LayerError for keys that are not live.
func (c *Canvas[U]) mustLayer(key LayerKey) *Layer {
	l, ok := c.layers.get(key)
	if !ok {
		panic(&LayerError{Op: "draw", Key: key})
	}
	return l
}

// Draw appends canvas-space paths, shifted by the margins, to a layer. It
// panics with a *LayerError when key is not live.
func (c *Canvas[U]) Draw(key LayerKey, d vector.ToPaths[space]) {
	c.DrawMany(key, d)
}

// DrawMany is Draw for several drawables.
func (c *Canvas[U]) DrawMany(key LayerKey, ds ...vector.ToPaths[space]) {
	l := c.mustLayer(key)
	appendTransformed(l, c.MarginTransform(), ds)
}

// DrawN appends normalized paths, projected onto the drawable area, to a
// layer. It panics with a *LayerError when key is not live.
func (c *Canvas[U]) DrawN(key LayerKey, d vector.ToPaths[normal]) {
	c.DrawNMany(key, d)
}

// DrawNMany is DrawN for several drawables.
func (c *Canvas[U]) DrawNMany(key LayerKey, ds ...vector.ToPaths[normal]) {
	l := c.mustLayer(key)
	appendTransformed(l, c.CanvasTransform(), ds)
}

func appendTransformed[S vector.Space](l *Layer, t vector.Transform[S, space], ds []vector.ToPaths[S]) {
	for _, d := range ds {
		for p := range d.Paths() {
			l.paths = append(l.paths, t.ApplyPath(p))
		}
	}
}

// Paths yields every path of every layer, layer by layer in creation order.
func (c *Canvas[U]) Paths() iter.Seq[vector.Path[space]] {
	return func(yield func(vector.Path[space]) bool) {
		for _, l := range c.layers.all() {
			for _, p := range l.paths {
				if !yield(p) {
					return
				}
			}
		}
	}
}
