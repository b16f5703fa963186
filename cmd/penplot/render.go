/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"penplot/internal/canvas"
	"penplot/internal/config"
	"penplot/internal/crash"
	"penplot/internal/export"
	"penplot/internal/gallery"
	applog "penplot/internal/log"
	"penplot/internal/sketch"
	"penplot/internal/units"
)

type renderOptions struct {
	seed    uint64
	seedSet bool
	outDir  string
	preset  string
	formats []string
	fit     bool
	uniform bool
	keep    bool
	name    string
}

func newRenderCmd(a *app) *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render <sketch>",
		Short: "Render a sketch and export it",
		Long: `Render draws a built-in sketch onto the configured paper and writes the
formats of the selected preset (plot: svg and per-layer svg, preview: svg and
png, print: pdf). With --keep the result is also stored in the gallery.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.seedSet = cmd.Flags().Changed("seed")
			return a.render(cmd, args[0], o)
		},
	}
	f := cmd.Flags()
	f.Uint64Var(&o.seed, "seed", 0, "random seed (default: time based, printed)")
	f.StringVarP(&o.outDir, "out", "o", "", "output directory (default export.out_dir)")
	f.StringVar(&o.preset, "preset", "", "export preset: plot, preview or print")
	f.StringSliceVarP(&o.formats, "format", "f", nil, "formats to write: svg, layers, pdf, png")
	f.BoolVar(&o.fit, "fit", false, "fit the view to the drawn paths")
	f.BoolVar(&o.uniform, "uniform", false, "stroke every layer with one uniform width")
	f.BoolVar(&o.keep, "keep", false, "keep the result in the gallery")
	f.StringVar(&o.name, "name", "", "base name of the written files (default <sketch>-<seed>)")
	return cmd
}

func (a *app) render(cmd *cobra.Command, name string, o renderOptions) error {
	s, err := sketch.Lookup(name)
	if err != nil {
		return err
	}
	if !o.seedSet {
		o.seed = rand.Uint64()
	}
	if a.cfg.Paper.IsInches() {
		return renderOn[units.Inches](cmd, a.cfg, s, o)
	}
	return renderOn[units.Millis](cmd, a.cfg, s, o)
}

func renderOn[U units.Unit](cmd *cobra.Command, cfg config.AppConfig, s sketch.Sketch, o renderOptions) error {
	l := applog.WithOperation(applog.WithComponent("cli"), "render").With(
		slog.String("sketch", s.Name()), slog.Uint64("seed", o.seed))
	paper, err := config.ResolvePaper[U](cfg.Paper)
	if err != nil {
		return err
	}
	c := canvas.New(paper)
	start := time.Now()
	if err := crash.Guard(s.Name(), func() error { return sketch.Run(s, c, o.seed) }); err != nil {
		return err
	}
	if o.fit || cfg.Export.Fit {
		if err := c.FitViewToPaths(); err != nil {
			return err
		}
	}

	style, ok := canvas.ParseStyle(cfg.Export.Style)
	if !ok {
		return fmt.Errorf("unknown stroke style %q", cfg.Export.Style)
	}
	if o.uniform {
		style = canvas.StyleUniform
	}
	base := o.name
	if base == "" {
		base = fmt.Sprintf("%s-%d", s.Name(), o.seed)
	}
	opt := export.BatchOptions{
		Preset:   export.PresetName(firstNonEmpty(o.preset, cfg.Export.Preset)),
		Formats:  o.formats,
		OutDir:   firstNonEmpty(o.outDir, cfg.Export.OutDir),
		BaseName: base,
		SVG: canvas.SVGOptions{
			Style:          style,
			MinStrokeWidth: cfg.Export.MinStrokeWidth,
		},
		DPI:   float64(cfg.Export.PreviewDPI),
		Title: fmt.Sprintf("%s (seed %d)", s.Name(), o.seed),
	}
	if len(opt.Formats) == 0 && opt.Preset == "" {
		opt.Formats = cfg.Export.Formats
	}
	written, err := export.Batch(c, opt)
	if err != nil {
		return err
	}
	l.Info("rendered", slog.Int("files", len(written)), slog.Duration("took", time.Since(start)))
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed %d\n", o.seed)
	for _, p := range written {
		fmt.Fprintln(out, p)
	}

	if !o.keep {
		return nil
	}
	g, err := openGallery(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer g.Close()
	e, err := g.Keep(cmd.Context(), gallery.KeepRequest{
		Name:   base,
		Sketch: s.Name(),
		Seed:   o.seed,
		SVG:    c.CreateSVG(opt.SVG),
		PNG:    export.RenderPreview(c, export.PNGOptions{DPI: float64(cfg.Export.PreviewDPI)}),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "kept %s\n", e.ID)
	return nil
}

func openGallery(ctx context.Context, cfg config.AppConfig) (*gallery.Gallery, error) {
	dsn, err := cfg.GalleryDSN()
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return gallery.Open(ctx, gallery.Options{
		Dir:       cfg.Gallery.Dir,
		Driver:    cfg.Gallery.Driver,
		DSN:       dsn,
		ThumbSize: cfg.Gallery.ThumbSize,
	})
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
