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
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"penplot/internal/canvas"
	applog "penplot/internal/log"
	"penplot/internal/units"
)

// PresetName represents a named export preset.
type PresetName string

const (
	PresetPlot    PresetName = "plot"
	PresetPreview PresetName = "preview"
	PresetPrint   PresetName = "print"
)

// Output formats understood by Batch.
const (
	FormatSVG    = "svg"
	FormatLayers = "layers"
	FormatPDF    = "pdf"
	FormatPNG    = "png"
)

// BatchOptions controls Batch.
//
// Path semantics:
//   - Files are written to OutDir (default "out"), created when missing.
//   - The whole drawing is <base>.svg, <base>.pdf and <base>.png.
//   - The per-layer split is <base>-layer<n>.svg.
type BatchOptions struct {
	Preset   PresetName
	Formats  []string // svg, layers, pdf, png; empty means preset defaults
	OutDir   string
	BaseName string // default "drawing"
	SVG      canvas.SVGOptions
	DPI      float64
	Title    string
}

// PresetFormats lists the formats a preset writes.
func PresetFormats(p PresetName) []string {
	switch p {
	case PresetPreview:
		return []string{FormatSVG, FormatPNG}
	case PresetPrint:
		return []string{FormatPDF}
	default:
		return []string{FormatSVG, FormatLayers}
	}
}

// Batch writes the canvas in every requested format and returns the written
// paths in format order.
func Batch[U units.Unit](c *canvas.Canvas[U], opt BatchOptions) ([]string, error) {
	formats := slices.Clone(opt.Formats)
	if len(formats) == 0 {
		formats = PresetFormats(opt.Preset)
	}
	for i := range formats {
		formats[i] = strings.ToLower(strings.TrimSpace(formats[i]))
	}
	dir := opt.OutDir
	if dir == "" {
		dir = "out"
	}
	base := opt.BaseName
	if base == "" {
		base = "drawing"
	}
	if opt.SVG.Title == "" {
		opt.SVG.Title = opt.Title
	}

	l := applog.WithOperation(applog.WithComponent("export"), "batch")
	var written []string
	for _, f := range formats {
		switch f {
		case FormatSVG:
			out := filepath.Join(dir, base+".svg")
			if err := SaveSVG(c, out, opt.SVG); err != nil {
				return written, fmt.Errorf("svg: %w", err)
			}
			written = append(written, out)
		case FormatLayers:
			outs, err := SaveLayerSVGs(c, dir, base, opt.SVG)
			written = append(written, outs...)
			if err != nil {
				return written, fmt.Errorf("layer svg: %w", err)
			}
		case FormatPDF:
			out := filepath.Join(dir, base+".pdf")
			if err := SavePDF(c, out, PDFOptions{Title: opt.Title, Layers: true}); err != nil {
				return written, fmt.Errorf("pdf: %w", err)
			}
			written = append(written, out)
		case FormatPNG:
			out := filepath.Join(dir, base+".png")
			if err := SavePNG(c, out, PNGOptions{DPI: opt.DPI}); err != nil {
				return written, fmt.Errorf("png: %w", err)
			}
			written = append(written, out)
		default:
			return written, fmt.Errorf("unknown format: %s", f)
		}
	}
	l.Debug("batch export finished", slog.String("dir", dir), slog.Int("files", len(written)))
	return written, nil
}
