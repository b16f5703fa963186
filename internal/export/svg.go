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
	"os"
	"path/filepath"

	"penplot/internal/canvas"
	"penplot/internal/units"
)

// SaveSVG writes the canvas as one SVG document.
func SaveSVG[U units.Unit](c *canvas.Canvas[U], path string, opt canvas.SVGOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := os.WriteFile(path, c.CreateSVG(opt), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

// SaveLayerSVGs writes one document per layer as <dir>/<base>-layer<n>.svg,
// so each pen can be plotted in its own pass. Every document keeps the full
// sheet and view so the passes line up. Layers selected in opt.Layers are
// honored. It returns the written paths in layer order.
func SaveLayerSVGs[U units.Unit](c *canvas.Canvas[U], dir, base string, opt canvas.SVGOptions) ([]string, error) {
	var out []string
	for key, l := range c.Layers() {
		if opt.Layers != nil && !containsKey(opt.Layers, key) {
			continue
		}
		one := opt
		one.Layers = []canvas.LayerKey{key}
		path := filepath.Join(dir, fmt.Sprintf("%s-layer%s.svg", base, l.Label()))
		if err := SaveSVG(c, path, one); err != nil {
			return out, err
		}
		out = append(out, path)
	}
	return out, nil
}

func containsKey(keys []canvas.LayerKey, k canvas.LayerKey) bool {
	for _, x := range keys {
		if x == k {
			return true
		}
	}
	return false
}
