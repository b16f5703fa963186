/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"penplot/internal/units"
)

func TestPreviewSize(t *testing.T) {
	w, h, px := PreviewSize(units.MustLookup("a6"), 254)
	if w != 1050 || h != 1470 || math.Abs(px-10) > 1e-9 {
		t.Fatalf("size = %dx%d at %v px/mm, want 1050x1470 at 10", w, h, px)
	}
	w, h, _ = PreviewSize(units.NewPaper[units.Inches](8.5, 11), 0)
	if w != 816 || h != 1056 {
		t.Fatalf("letter at default dpi = %dx%d, want 816x1056", w, h)
	}
}

func TestRenderPreviewStrokesLayers(t *testing.T) {
	img := RenderPreview(sampleCanvas(), PNGOptions{DPI: 254})
	if b := img.Bounds(); b.Dx() != 1050 || b.Dy() != 1470 {
		t.Fatalf("bounds = %v", b)
	}
	if c := img.RGBAAt(5, 5); c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("background = %v, want white", c)
	}
	// top edge of the red rectangle at y=30mm
	if c := img.RGBAAt(450, 300); c.R < 200 || c.G > 60 || c.B > 60 {
		t.Fatalf("rectangle edge = %v, want red", c)
	}
	// circles are not filled
	if c := img.RGBAAt(525, 735); c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("circle center = %v, want white", c)
	}
}

func TestRenderPreviewBackground(t *testing.T) {
	bg := color.RGBA{10, 20, 30, 255}
	img := RenderPreview(sampleCanvas(), PNGOptions{DPI: 25.4, Background: bg})
	if c := img.RGBAAt(0, 0); c != bg {
		t.Fatalf("background = %v, want %v", c, bg)
	}
}

func TestWritePNGDecodes(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, sampleCanvas(), PNGOptions{DPI: 25.4}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 105 || b.Dy() != 147 {
		t.Fatalf("bounds = %v, want 105x147", b)
	}
}

func TestSavePNGCreatesDirs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "a", "b", "preview.png")
	if err := SavePNG(sampleCanvas(), out, PNGOptions{DPI: 25.4}); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
}
