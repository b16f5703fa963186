/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"fmt"

	"penplot/internal/units"
)

// IsInches reports whether the sheet is configured in inches.
func (p PaperConfig) IsInches() bool { return p.Unit == "in" }

// ResolvePaper builds the configured sheet in unit U: table or custom size,
// orientation, margins and square mode. U must match p.Unit when it is set.
func ResolvePaper[U units.Unit](p PaperConfig) (units.Paper[U], error) {
	var (
		paper units.Paper[U]
		u     U
	)
	if p.Unit != "" && p.Unit != u.Suffix() {
		return paper, fmt.Errorf("paper: configured in %q, requested in %q", p.Unit, u.Suffix())
	}
	switch p.Name {
	case "", "custom":
		if p.Width <= 0 || p.Height <= 0 {
			return paper, fmt.Errorf("paper: custom size needs a positive width and height")
		}
		paper = units.NewPaper(U(p.Width), U(p.Height))
	default:
		mm, ok := units.Lookup(p.Name)
		if !ok {
			return paper, fmt.Errorf("paper: unknown size %q", p.Name)
		}
		paper = units.ConvertPaper[units.Millis, U](mm)
	}

	switch p.Orientation {
	case "":
	case "landscape":
		if !paper.IsLandscape() {
			paper = paper.SwitchOrientation()
		}
	case "portrait":
		if paper.IsLandscape() {
			paper = paper.SwitchOrientation()
		}
	default:
		return paper, fmt.Errorf("paper: unknown orientation %q", p.Orientation)
	}

	top, right, bottom, left := p.Margin, p.Margin, p.Margin, p.Margin
	switch len(p.Margins) {
	case 0:
	case 4:
		top, right, bottom, left = p.Margins[0], p.Margins[1], p.Margins[2], p.Margins[3]
	default:
		return paper, fmt.Errorf("paper: margins need 4 values (top right bottom left), got %d", len(p.Margins))
	}
	if min(top, right, bottom, left) < 0 {
		return paper, fmt.Errorf("paper: negative margin")
	}
	w, h := float64(paper.Width), float64(paper.Height)
	if p.Square {
		smallest := min(top, right, bottom, left)
		if 2*smallest > min(w, h) {
			return paper, fmt.Errorf("paper: margin %v leaves no square on %s", smallest, paper)
		}
		return paper.MakeSquare(U(smallest)), nil
	}
	if left+right > w || top+bottom > h {
		return paper, fmt.Errorf("paper: margins exceed the sheet %s", paper)
	}
	return paper.AddMargins(U(top), U(right), U(bottom), U(left)), nil
}
