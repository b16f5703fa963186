/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"

	"penplot/internal/canvas"
	"penplot/internal/units"
	"penplot/internal/vector"
)

// DefaultDPI is the preview resolution used when PNGOptions.DPI is zero.
const DefaultDPI = 96

// PNGOptions controls the raster preview.
type PNGOptions struct {
	DPI        float64
	Background color.Color // nil means white
}

// PreviewSize returns the pixel size of the preview of paper at dpi.
func PreviewSize[U units.Unit](paper units.Paper[U], dpi float64) (w, h int, pxPerUnit float64) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	var u U
	pxPerUnit = dpi / (units.MillisPerInch / u.MillisPerUnit())
	return pixels(float64(paper.Width) * pxPerUnit), pixels(float64(paper.Height) * pxPerUnit), pxPerUnit
}

// pixels rounds up, ignoring float noise just above a whole pixel.
func pixels(v float64) int { return max(1, int(math.Ceil(v-1e-6))) }

// RenderPreview rasterizes the canvas onto a sheet-sized image. Strokes use
// each layer's pen with round caps, and are at least one pixel wide.
func RenderPreview[U units.Unit](c *canvas.Canvas[U], opt PNGOptions) *image.RGBA {
	w, h, px := PreviewSize(c.Paper(), opt.DPI)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := opt.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	t, scale := pageTransform(c)
	t = t.ThenScale(px, px)
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	for _, l := range c.Layers() {
		st := layerStroke[U](l)
		width := max(st.Width*scale*px, 1)
		dasher.SetStroke(fixed.Int26_6(width*64), 0, rasterCap(st.Cap), rasterCap(st.Cap), rasterx.RoundGap, rasterJoin(st.Join), nil, 0)
		dasher.SetColor(st.Color)
		sink := &rasterSink{d: dasher}
		for p := range l.Paths() {
			tracePath(t.ApplyPath(p), sink)
			sink.finish()
			dasher.Draw()
			dasher.Clear()
		}
	}
	return img
}

// WritePNG encodes the preview as PNG.
func WritePNG[U units.Unit](w io.Writer, c *canvas.Canvas[U], opt PNGOptions) error {
	if err := png.Encode(w, RenderPreview(c, opt)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG is WritePNG to a file.
func SavePNG[U units.Unit](c *canvas.Canvas[U], path string, opt PNGOptions) (err error) {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close png: %w", cerr)
		}
	}()
	return WritePNG(f, c, opt)
}

// rasterSink adapts a rasterx dasher to Vectorizer.
type rasterSink struct {
	d    *rasterx.Dasher
	open bool
}

func (s *rasterSink) MoveTo(x, y float64) {
	s.finish()
	s.d.Start(rasterx.ToFixedP(x, y))
	s.open = true
}

func (s *rasterSink) LineTo(x, y float64) { s.d.Line(rasterx.ToFixedP(x, y)) }

func (s *rasterSink) CurveTo(cx, cy, x, y float64) {
	s.d.QuadBezier(rasterx.ToFixedP(cx, cy), rasterx.ToFixedP(x, y))
}

func (s *rasterSink) CurveBezierCubicTo(cx1, cy1, cx2, cy2, x, y float64) {
	s.d.CubeBezier(rasterx.ToFixedP(cx1, cy1), rasterx.ToFixedP(cx2, cy2), rasterx.ToFixedP(x, y))
}

func (s *rasterSink) ClosePath() {
	s.d.Stop(true)
	s.open = false
}

func (s *rasterSink) finish() {
	if s.open {
		s.d.Stop(false)
		s.open = false
	}
}

func rasterCap(c vector.LineCap) rasterx.CapFunc {
	switch c {
	case vector.CapRound:
		return rasterx.RoundCap
	case vector.CapSquare:
		return rasterx.SquareCap
	}
	return rasterx.ButtCap
}

func rasterJoin(j vector.LineJoin) rasterx.JoinMode {
	switch j {
	case vector.JoinRound:
		return rasterx.Round
	case vector.JoinBevel:
		return rasterx.Bevel
	}
	return rasterx.Miter
}
