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
	"strings"
	"testing"

	"penplot/internal/canvas"
)

func TestSaveSVGMatchesCreateSVG(t *testing.T) {
	c := sampleCanvas()
	out := filepath.Join(t.TempDir(), "svg", "drawing.svg")
	if err := SaveSVG(c, out, canvas.SVGOptions{}); err != nil {
		t.Fatalf("SaveSVG: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != c.CreateSVG(canvas.SVGOptions{}).String() {
		t.Fatalf("file content differs from CreateSVG")
	}
}

func TestSaveLayerSVGsOneFilePerLayer(t *testing.T) {
	c := sampleCanvas()
	dir := t.TempDir()
	paths, err := SaveLayerSVGs(c, dir, "drawing", canvas.SVGOptions{})
	if err != nil {
		t.Fatalf("SaveLayerSVGs: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d files, want 2", len(paths))
	}
	for i, want := range []string{"drawing-layer1.svg", "drawing-layer2.svg"} {
		if filepath.Base(paths[i]) != want {
			t.Fatalf("file %d = %s, want %s", i, paths[i], want)
		}
		b, err := os.ReadFile(paths[i])
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		s := string(b)
		if strings.Count(s, "<g ") != 1 {
			t.Fatalf("%s should hold exactly one layer group:\n%s", want, s)
		}
		if !strings.Contains(s, fmt.Sprintf(`id="layer%d"`, i+1)) {
			t.Fatalf("%s holds the wrong layer:\n%s", want, s)
		}
	}
}

func TestSaveLayerSVGsHonorsSelection(t *testing.T) {
	c := sampleCanvas()
	var last canvas.LayerKey
	for k := range c.Layers() {
		last = k
	}
	paths, err := SaveLayerSVGs(c, t.TempDir(), "x", canvas.SVGOptions{Layers: []canvas.LayerKey{last}})
	if err != nil {
		t.Fatalf("SaveLayerSVGs: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "x-layer2.svg" {
		t.Fatalf("paths = %v", paths)
	}
}
