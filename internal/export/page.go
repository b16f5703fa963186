/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export writes canvases to files: SVG documents (whole or split per
// layer for pen changes), a PDF proof and a PNG preview. PDF and PNG place the
// canvas view on the sheet the way an SVG viewer does, scaled uniformly and
// centered.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"penplot/internal/canvas"
	"penplot/internal/units"
	"penplot/internal/vector"
)

type space = vector.CanvasSpace

// Vectorizer receives the segments of a traced path. *gofpdf.Fpdf satisfies it.
type Vectorizer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// CurveTo adds a quadratic bezier curve.
	CurveTo(cx, cy, x, y float64)
	CurveBezierCubicTo(cx1, cy1, cx2, cy2, x, y float64)
	ClosePath()
}

// pageTransform maps the canvas view onto the sheet, in paper units, with the
// default SVG preserveAspectRatio (xMidYMid meet). scale is the factor applied
// to view units, which stroke widths must follow.
func pageTransform[U units.Unit](c *canvas.Canvas[U]) (t vector.Transform[space, space], scale float64) {
	paper, view := c.Paper(), c.View()
	pw, ph := float64(paper.Width), float64(paper.Height)
	vw, vh := view.Width(), view.Height()
	scale = 1
	if vw > 0 && vh > 0 {
		scale = min(pw/vw, ph/vh)
	}
	vmin := view.Min()
	t = vector.Translation[space, space](-vmin.X, -vmin.Y).
		ThenScale(scale, scale).
		ThenTranslate((pw-vw*scale)/2, (ph-vh*scale)/2)
	return t, scale
}

// layerStroke is the stroke of a layer's pen in paper units before view scaling.
func layerStroke[U units.Unit](l *canvas.Layer) vector.Stroke {
	return vector.PenStroke(l, float64(units.FromMillis[U](l.NibSize())))
}

// tracePath feeds p, already in page coordinates, to v as M/L/Q/C/Z segments.
// Segments that do not follow a move start at the current subpath start. It
// reports whether any segment was emitted.
func tracePath(p vector.Path[space], v Vectorizer) bool {
	var (
		start vector.Point[space]
		open  bool
		drew  bool
	)
	for _, cmd := range p.Simplified().All() {
		op := cmd.Op()
		if op == vector.OpClose {
			if open {
				v.ClosePath()
				open = false
			}
			continue
		}
		pts := cmd.Points()
		if op == vector.OpMoveTo {
			start = pts[0]
			v.MoveTo(start.X, start.Y)
			open = true
			continue
		}
		if !open {
			v.MoveTo(start.X, start.Y)
			open = true
		}
		switch op {
		case vector.OpLineTo:
			v.LineTo(pts[0].X, pts[0].Y)
		case vector.OpQuadTo:
			v.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		case vector.OpCubicTo:
			v.CurveBezierCubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		}
		drew = true
	}
	return drew
}

// createFile opens path for writing, creating parent directories.
func createFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure out dir: %w", err)
	}
	return os.Create(path)
}
