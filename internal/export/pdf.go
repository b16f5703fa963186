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
	"io"

	"github.com/jung-kurt/gofpdf"

	"penplot/internal/canvas"
	"penplot/internal/units"
	"penplot/internal/vector"
	"penplot/internal/version"
)

// PDFOptions controls PDF export.
type PDFOptions struct {
	Title  string
	Author string
	// Layers exposes every canvas layer as an optional content group that
	// viewers can toggle.
	Layers bool
}

// WritePDF writes the canvas as a single page the size of the paper, in the
// paper's unit. Paths are stroked with their layer's pen.
func WritePDF[U units.Unit](w io.Writer, c *canvas.Canvas[U], opt PDFOptions) error {
	var u U
	paper := c.Paper()
	size := gofpdf.SizeType{Wd: float64(paper.Width), Ht: float64(paper.Height)}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        u.Suffix(),
		Size:           size,
		OrientationStr: "P",
	})
	if opt.Title != "" {
		pdf.SetTitle(opt.Title, true)
	}
	if opt.Author != "" {
		pdf.SetAuthor(opt.Author, true)
	}
	pdf.SetCreator("penplot "+version.String(), true)
	if opt.Layers {
		pdf.OpenLayerPane()
	}
	pdf.AddPageFormat("P", size)

	t, scale := pageTransform(c)
	for _, l := range c.Layers() {
		if opt.Layers {
			pdf.BeginLayer(pdf.AddLayer("Layer "+l.Label(), true))
		}
		st := layerStroke[U](l)
		pdf.SetDrawColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
		pdf.SetLineWidth(st.Width * scale)
		pdf.SetLineCapStyle(pdfCap(st.Cap))
		pdf.SetLineJoinStyle(pdfJoin(st.Join))
		for p := range l.Paths() {
			if tracePath(t.ApplyPath(p), pdf) {
				pdf.DrawPath("D")
			}
		}
		if opt.Layers {
			pdf.EndLayer()
		}
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// SavePDF is WritePDF to a file.
func SavePDF[U units.Unit](c *canvas.Canvas[U], path string, opt PDFOptions) (err error) {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close pdf: %w", cerr)
		}
	}()
	return WritePDF(f, c, opt)
}

func pdfCap(c vector.LineCap) string {
	switch c {
	case vector.CapRound:
		return "round"
	case vector.CapSquare:
		return "square"
	}
	return "butt"
}

func pdfJoin(j vector.LineJoin) string {
	switch j {
	case vector.JoinRound:
		return "round"
	case vector.JoinBevel:
		return "bevel"
	}
	return "miter"
}
