/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import (
	"log/slog"

	"penplot/internal/vector"
)

// FitViewToPaths replaces the view with the smallest box enclosing every
// anchor and control point of every path. Relative and axis commands are
// resolved against the path cursor first. Arcs cannot be fitted from their
// points and yield an *UnsupportedCommandError; the view is then unchanged.
// NaN coordinates are skipped. Without any point the view is left as is.
func (c *Canvas[U]) FitViewToPaths() error {
	var ext vector.Extent[space]
	for key, l := range c.layers.all() {
		for i, p := range l.paths {
			abs := p.Absolute()
			for j, cmd := range abs.All() {
				switch cmd.Op() {
				case vector.OpClose:
				case vector.OpMoveTo, vector.OpLineTo, vector.OpSmoothQuadTo,
					vector.OpCubicTo, vector.OpQuadTo, vector.OpSmoothCubicTo:
					for _, pt := range cmd.Points() {
						ext.Add(pt)
					}
				default:
					return &UnsupportedCommandError{Op: p.At(j).Op(), Layer: key, Path: i}
				}
			}
		}
	}
	box, ok := ext.Box()
	if !ok {
		return nil
	}
	c.view = box
	c.log.Debug("view fitted", slog.String("view", box.String()))
	return nil
}
