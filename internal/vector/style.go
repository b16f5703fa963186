/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import (
	"fmt"
	"math"
)

// Styles and pens.

// Color is an 8-bit sRGB color.
type Color struct{ R, G, B, A uint8 }

var (
	Black = Color{0, 0, 0, 255}
	White = Color{255, 255, 255, 255}
)

// Hex returns the color as #rrggbb; alpha is dropped.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r, g, b, a = uint32(c.R), uint32(c.G), uint32(c.B), uint32(c.A)
	r |= r << 8
	g |= g << 8
	b |= b << 8
	a |= a << 8
	// premultiply
	r = r * a / 0xffff
	g = g * a / 0xffff
	b = b * a / 0xffff
	return
}

// LinearRGB is a color in linear-light RGB with components in [0,1].
type LinearRGB struct{ R, G, B float64 }

// SRGB applies the sRGB transfer function and quantizes to 8 bits.
func (c LinearRGB) SRGB() Color {
	return Color{encodeSRGB(c.R), encodeSRGB(c.G), encodeSRGB(c.B), 255}
}

func encodeSRGB(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	if v <= 0.0031308 {
		v *= 12.92
	} else {
		v = 1.055*math.Pow(v, 1/2.4) - 0.055
	}
	return uint8(math.Round(v * 255))
}

// Pen supplies the stroke color and nib width of a layer.
type Pen interface {
	RGB() LinearRGB
	NibSizeMM() float64
}

// BasicPen is a Pen value.
type BasicPen struct {
	Name  string
	Color LinearRGB
	NibMM float64
}

func (p BasicPen) RGB() LinearRGB     { return p.Color }
func (p BasicPen) NibSizeMM() float64 { return p.NibMM }

// Some common plotter pens.
var (
	BlackFineliner = BasicPen{Name: "black fineliner", NibMM: 0.3}
	RedFineliner   = BasicPen{Name: "red fineliner", Color: LinearRGB{R: 1}, NibMM: 0.3}
	BlueFineliner  = BasicPen{Name: "blue fineliner", Color: LinearRGB{B: 1}, NibMM: 0.3}
	BlackMarker    = BasicPen{Name: "black marker", NibMM: 0.8}
)

type LineCap uint8

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

type LineJoin uint8

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Stroke describes how a path is inked by a raster or print backend.
type Stroke struct {
	Color Color
	Width float64
	Cap   LineCap
	Join  LineJoin
}

// PenStroke is the stroke a pen leaves on paper: its color and a round nib.
// width is the nib size in the target unit.
func PenStroke(p Pen, width float64) Stroke {
	return Stroke{Color: p.RGB().SRGB(), Width: width, Cap: CapRound, Join: JoinRound}
}
