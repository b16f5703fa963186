/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import (
	"bytes"
	"html"
	"io"
	"slices"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"penplot/internal/units"
)

// Style selects how layer strokes are derived.
type Style uint8

const (
	// StylePen strokes each layer with its pen's color and nib size.
	StylePen Style = iota
	// StyleUniform strokes every path with one canvas-wide width.
	StyleUniform
)

func (s Style) String() string {
	if s == StyleUniform {
		return "uniform"
	}
	return "pen"
}

// ParseStyle maps "pen" and "uniform" to a Style.
func ParseStyle(s string) (Style, bool) {
	switch s {
	case "pen", "":
		return StylePen, true
	case "uniform":
		return StyleUniform, true
	}
	return StylePen, false
}

// DefaultMinStrokeWidth is the floor of the uniform stroke width.
const DefaultMinStrokeWidth = 0.25

// SVGOptions controls CreateSVG. The zero value exports every layer with its
// pen style.
type SVGOptions struct {
	Style Style
	// DefaultStroke is the stroke color for StyleUniform. When empty each layer
	// gets a color from a fixed palette.
	DefaultStroke string
	// MinStrokeWidth is the floor of the uniform width, in paper units.
	// Zero means DefaultMinStrokeWidth.
	MinStrokeWidth float64
	// Layers restricts the output to the given keys. Nil exports every layer.
	Layers []LayerKey
	Title  string
}

// palette colors layers in uniform style by layer id.
var palette = []string{"#00f", "#080", "#f00", "#0cc", "#0f0", "#c0c", "#cc0"}

const inkscapeNS = "http://www.inkscape.org/namespaces/inkscape"

// Document is a finished SVG document.
type Document []byte

func (d Document) String() string { return string(d) }

func (d Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d)
	return int64(n), err
}

// UniformStrokeWidth is the width used by StyleUniform: the larger of the
// floor and a 500th of the paper width.
func (c *Canvas[U]) UniformStrokeWidth(floor float64) float64 {
	if floor <= 0 {
		floor = DefaultMinStrokeWidth
	}
	return max(floor, float64(c.paper.Width)/500)
}

// CreateSVG renders the canvas. The viewBox is the current view, width and
// height are the paper size with the unit suffix, and every layer becomes an
// Inkscape layer group in creation order holding one path element per path.
// Pen stroke colors are written as sRGB hex converted from the linear layer
// color. CreateSVG does not modify the canvas.
func (c *Canvas[U]) CreateSVG(opt SVGOptions) Document {
	var (
		buf bytes.Buffer
		u   U
	)
	doc := svg.New(&buf)
	vmin := c.view.Min()
	doc.Startraw(
		attr("xmlns:inkscape", inkscapeNS),
		attr("viewBox", num(vmin.X)+" "+num(vmin.Y)+" "+num(c.view.Width())+" "+num(c.view.Height())),
		attr("width", num(float64(c.paper.Width))+u.Suffix()),
		attr("height", num(float64(c.paper.Height))+u.Suffix()),
	)
	if opt.Title != "" {
		doc.Title(opt.Title)
	}
	uniform := c.UniformStrokeWidth(opt.MinStrokeWidth)
	for key, l := range c.layers.all() {
		if opt.Layers != nil && !slices.Contains(opt.Layers, key) {
			continue
		}
		stroke, width := c.layerStroke(l, opt, uniform)
		label := l.Label()
		doc.Group(
			`fill="none"`,
			attr("id", "layer"+label),
			`inkscape:groupmode="layer"`,
			attr("inkscape:label", label),
			attr("stroke", stroke),
			`stroke-linecap="round"`,
			`style="display:inline"`,
		)
		sw := attr("stroke-width", num(width))
		for _, p := range l.paths {
			doc.Path(p.Data(), sw)
		}
		doc.Gend()
	}
	doc.End()
	return Document(buf.Bytes())
}

func (c *Canvas[U]) layerStroke(l *Layer, opt SVGOptions, uniform float64) (color string, width float64) {
	if opt.Style == StyleUniform {
		color = opt.DefaultStroke
		if color == "" {
			color = "black"
			if l.id < len(palette) {
				color = palette[l.id]
			}
		}
		return color, uniform
	}
	return l.color.SRGB().Hex(), float64(units.FromMillis[U](l.nib))
}

func attr(name, value string) string { return name + `="` + html.EscapeString(value) + `"` }

func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
