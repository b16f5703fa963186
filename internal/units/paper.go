/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package units

import "fmt"

// Paper is a sheet of paper with independently settable margins. Width and
// Height are the gross sheet dimensions; the margins are subtracted from them to
// obtain the drawable area. All fields are non-negative.
//
// Paper is a value type: every operation returns a modified copy.
type Paper[U Unit] struct {
	Width  U
	Height U

	MarginTop    U
	MarginRight  U
	MarginBottom U
	MarginLeft   U
}

// NewPaper returns a sheet with the given dimensions and no margins.
func NewPaper[U Unit](width, height U) Paper[U] {
	mustNonNegative("width", width)
	mustNonNegative("height", height)
	return Paper[U]{Width: width, Height: height}
}

// DrawableWidth is the sheet width minus the left and right margins.
func (p Paper[U]) DrawableWidth() U { return p.Width - p.MarginLeft - p.MarginRight }

// DrawableHeight is the sheet height minus the top and bottom margins.
func (p Paper[U]) DrawableHeight() U { return p.Height - p.MarginTop - p.MarginBottom }

// IsLandscape reports whether the sheet is wider than tall.
func (p Paper[U]) IsLandscape() bool { return p.Width > p.Height }

// SwitchOrientation turns the sheet by 90 degrees. Width and height swap and the
// margins follow the transposed frame: the old left margin becomes the top, the
// old bottom becomes the right, the old right becomes the bottom and the old top
// becomes the left. Margins (t, r, b, l) therefore become (l, b, r, t).
func (p Paper[U]) SwitchOrientation() Paper[U] {
	return Paper[U]{
		Width:        p.Height,
		Height:       p.Width,
		MarginTop:    p.MarginLeft,
		MarginRight:  p.MarginBottom,
		MarginBottom: p.MarginRight,
		MarginLeft:   p.MarginTop,
	}
}

// AddMargin sets all four margins to m.
func (p Paper[U]) AddMargin(m U) Paper[U] {
	return p.AddMargins(m, m, m, m)
}

// AddMargins sets the four margins independently, in CSS order.
func (p Paper[U]) AddMargins(top, right, bottom, left U) Paper[U] {
	mustNonNegative("top margin", top)
	mustNonNegative("right margin", right)
	mustNonNegative("bottom margin", bottom)
	mustNonNegative("left margin", left)
	if left+right > p.Width || top+bottom > p.Height {
		panic(fmt.Sprintf("units: margins %v/%v/%v/%v exceed sheet %vx%v", top, right, bottom, left, p.Width, p.Height))
	}
	p.MarginTop, p.MarginRight, p.MarginBottom, p.MarginLeft = top, right, bottom, left
	return p
}

// MakeSquare sets margins so that the drawable area is the largest centered
// square inset by at least smallest on the short axis. On a sheet wider than
// tall the top and bottom margins equal smallest and the left and right margins
// absorb the remaining width symmetrically; a tall sheet is handled the other
// way around.
func (p Paper[U]) MakeSquare(smallest U) Paper[U] {
	if p.Width >= p.Height {
		side := p.Height - 2*smallest
		side2 := (p.Width - side) / 2
		return p.AddMargins(smallest, side2, smallest, side2)
	}
	side := p.Width - 2*smallest
	side2 := (p.Height - side) / 2
	return p.AddMargins(side2, smallest, side2, smallest)
}

// ConvertPaper re-expresses a sheet in another unit family.
func ConvertPaper[From, To Unit](p Paper[From]) Paper[To] {
	return Paper[To]{
		Width:        Convert[From, To](p.Width),
		Height:       Convert[From, To](p.Height),
		MarginTop:    Convert[From, To](p.MarginTop),
		MarginRight:  Convert[From, To](p.MarginRight),
		MarginBottom: Convert[From, To](p.MarginBottom),
		MarginLeft:   Convert[From, To](p.MarginLeft),
	}
}

func (p Paper[U]) String() string {
	var u U
	return fmt.Sprintf("%sx%s%s (margins %s %s %s %s)",
		format(float64(p.Width)), format(float64(p.Height)), u.Suffix(),
		format(float64(p.MarginTop)), format(float64(p.MarginRight)),
		format(float64(p.MarginBottom)), format(float64(p.MarginLeft)))
}

func mustNonNegative[U Unit](what string, v U) {
	if !(v >= 0) {
		panic(fmt.Sprintf("units: negative or NaN %s %v", what, float64(v)))
	}
}
