/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import (
	"encoding/xml"
	"strconv"
	"strings"
	"testing"

	"penplot/internal/units"
	"penplot/internal/vector"
)

type svgPath struct {
	D     string `xml:"d,attr"`
	Width string `xml:"stroke-width,attr"`
}

type svgGroup struct {
	ID     string    `xml:"id,attr"`
	Label  string    `xml:"http://www.inkscape.org/namespaces/inkscape label,attr"`
	Fill   string    `xml:"fill,attr"`
	Stroke string    `xml:"stroke,attr"`
	Cap    string    `xml:"stroke-linecap,attr"`
	Paths  []svgPath `xml:"path"`
}

type svgDoc struct {
	XMLName xml.Name   `xml:"svg"`
	ViewBox string     `xml:"viewBox,attr"`
	Width   string     `xml:"width,attr"`
	Height  string     `xml:"height,attr"`
	Groups  []svgGroup `xml:"g"`
}

func parseSVG(t *testing.T, d Document) svgDoc {
	t.Helper()
	var doc svgDoc
	if err := xml.Unmarshal(d, &doc); err != nil {
		t.Fatalf("document is not well-formed: %v\n%s", err, d)
	}
	return doc
}

func TestCreateSVG_TwoLayers(t *testing.T) {
	c := a4(10)
	thin := c.CreateLayer(vector.BasicPen{Color: vector.LinearRGB{R: 1}, NibMM: 0.3})
	thick := c.CreateLayer(vector.BasicPen{Color: vector.LinearRGB{B: 1}, NibMM: 0.8})
	c.DrawN(thick, vector.Line(npt(0, 0), npt(1, 0)))
	c.DrawN(thin, vector.Line(npt(0, 0), npt(1, 1)))

	doc := parseSVG(t, c.CreateSVG(SVGOptions{}))
	if doc.ViewBox != "0 0 210 297" || doc.Width != "210mm" || doc.Height != "297mm" {
		t.Fatalf("unexpected root attributes: %+v", doc)
	}
	if len(doc.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(doc.Groups))
	}
	want := []struct{ id, label, stroke, width, d string }{
		{"layer1", "1", "#ff0000", "0.3", "M10 10 L200 287"},
		{"layer2", "2", "#0000ff", "0.8", "M10 10 L200 10"},
	}
	for i, w := range want {
		g := doc.Groups[i]
		if g.ID != w.id || g.Label != w.label || g.Stroke != w.stroke {
			t.Fatalf("group %d: %+v", i, g)
		}
		if g.Fill != "none" || g.Cap != "round" {
			t.Fatalf("group %d must be unfilled with round caps: %+v", i, g)
		}
		if len(g.Paths) != 1 || g.Paths[0].Width != w.width || g.Paths[0].D != w.d {
			t.Fatalf("group %d paths: %+v", i, g.Paths)
		}
	}
}

func TestCreateSVG_StrokeIsSRGB(t *testing.T) {
	c := a4(0)
	key := c.CreateLayer(vector.BasicPen{Color: vector.LinearRGB{R: 0.2, B: 1}, NibMM: 0.5})
	c.Draw(key, vector.Line(cpt(0, 0), cpt(1, 1)))
	doc := parseSVG(t, c.CreateSVG(SVGOptions{}))
	if got := doc.Groups[0].Stroke; got != "#7c00ff" {
		t.Fatalf("stroke = %s, want #7c00ff (linear 0.2 encoded as sRGB)", got)
	}
}

func TestCreateSVG_UniformStyle(t *testing.T) {
	c := a4(0)
	a := c.CreateLayer(vector.BlackMarker)
	b := c.CreateLayer(vector.BlackMarker)
	c.Draw(a, vector.Line(cpt(0, 0), cpt(1, 1)))
	c.Draw(b, vector.Line(cpt(0, 0), cpt(1, 1)))

	doc := parseSVG(t, c.CreateSVG(SVGOptions{Style: StyleUniform}))
	if doc.Groups[0].Stroke != "#00f" || doc.Groups[1].Stroke != "#080" {
		t.Fatalf("uniform style should use the layer palette: %+v", doc.Groups)
	}
	if w := doc.Groups[0].Paths[0].Width; w != "0.42" {
		t.Fatalf("uniform width = %s, want 0.42 (210/500)", w)
	}

	doc = parseSVG(t, c.CreateSVG(SVGOptions{Style: StyleUniform, DefaultStroke: "black", MinStrokeWidth: 1}))
	if doc.Groups[1].Stroke != "black" || doc.Groups[1].Paths[0].Width != "1" {
		t.Fatalf("floor and default stroke ignored: %+v", doc.Groups[1])
	}
}

func TestCreateSVG_InchPaper(t *testing.T) {
	c := New(units.NewPaper[units.Inches](8.5, 11))
	key := c.CreateLayer(vector.BasicPen{NibMM: 0.3})
	c.Draw(key, vector.Line(cpt(0, 0), cpt(1, 1)))
	doc := parseSVG(t, c.CreateSVG(SVGOptions{}))
	if doc.Width != "8.5in" || doc.Height != "11in" {
		t.Fatalf("unexpected size %s x %s", doc.Width, doc.Height)
	}
	want := strconv.FormatFloat(0.3/25.4, 'f', -1, 64)
	if got := doc.Groups[0].Paths[0].Width; got != want {
		t.Fatalf("nib should be converted to inches: got %s, want %s", got, want)
	}
}

func TestCreateSVG_LayerFilterAndView(t *testing.T) {
	c := a4(0)
	a := c.CreateLayer(vector.BlackFineliner)
	b := c.CreateLayer(vector.RedFineliner)
	c.Draw(a, vector.Line(cpt(10, 10), cpt(20, 30)))
	c.Draw(b, vector.Line(cpt(5, 5), cpt(6, 6)))
	if err := c.FitViewToPaths(); err != nil {
		t.Fatalf("fit: %v", err)
	}

	doc := parseSVG(t, c.CreateSVG(SVGOptions{Layers: []LayerKey{b}}))
	if doc.ViewBox != "5 5 15 25" {
		t.Fatalf("viewBox should follow the fitted view, got %q", doc.ViewBox)
	}
	if len(doc.Groups) != 1 || doc.Groups[0].ID != "layer2" {
		t.Fatalf("filter should keep only layer2: %+v", doc.Groups)
	}
}

func TestCreateSVG_IsPureAndDeterministic(t *testing.T) {
	c := a4(10)
	key := c.CreateLayer(vector.BlackFineliner)
	c.DrawN(key, vector.Circle(npt(0.5, 0.5), 0.25))
	view, n := c.View(), c.LayerCount()

	first := c.CreateSVG(SVGOptions{Title: "circles"})
	second := c.CreateSVG(SVGOptions{Title: "circles"})
	if first.String() != second.String() {
		t.Fatalf("export is not deterministic")
	}
	if c.View() != view || c.LayerCount() != n {
		t.Fatalf("export must not modify the canvas")
	}
	s := first.String()
	for _, frag := range []string{`xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"`, `inkscape:groupmode="layer"`, `style="display:inline"`} {
		if !strings.Contains(s, frag) {
			t.Fatalf("missing %s in\n%s", frag, s)
		}
	}
	var sb strings.Builder
	if _, err := first.WriteTo(&sb); err != nil || sb.String() != s {
		t.Fatalf("WriteTo mismatch: %v", err)
	}
	parseSVG(t, first)
}

func TestParseStyle(t *testing.T) {
	if s, ok := ParseStyle("uniform"); !ok || s != StyleUniform || s.String() != "uniform" {
		t.Fatalf("uniform not parsed")
	}
	if s, ok := ParseStyle(""); !ok || s != StylePen {
		t.Fatalf("empty should default to pen")
	}
	if _, ok := ParseStyle("neon"); ok {
		t.Fatalf("unknown style accepted")
	}
}
