/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package units holds the physical unit families used to size a drawing and the
// Paper type describing a sheet with its margins.
package units

import "strconv"

// MillisPerInch is the fixed conversion factor between the two unit families.
const MillisPerInch = 25.4

// Unit is a physical length unit supported by SVG. The underlying float64 gives
// every unit subtraction, division by a scalar, a zero value and ordering.
type Unit interface {
	~float64
	// Suffix is the unit symbol appended to SVG width/height attributes.
	Suffix() string
	// MillisPerUnit converts one unit into millimeters.
	MillisPerUnit() float64
}

// Millis is a length in millimeters.
type Millis float64

func (Millis) Suffix() string         { return "mm" }
func (Millis) MillisPerUnit() float64 { return 1 }

// Inches returns m expressed in inches.
func (m Millis) Inches() Inches { return Inches(float64(m) / MillisPerInch) }

func (m Millis) String() string { return format(float64(m)) + "mm" }

// Inches is a length in inches.
type Inches float64

func (Inches) Suffix() string         { return "in" }
func (Inches) MillisPerUnit() float64 { return MillisPerInch }

// Millis returns i expressed in millimeters.
func (i Inches) Millis() Millis { return Millis(float64(i) * MillisPerInch) }

func (i Inches) String() string { return format(float64(i)) + "in" }

// ToMillis converts any unit value into millimeters.
func ToMillis[U Unit](u U) Millis {
	return Millis(float64(u) * u.MillisPerUnit())
}

// FromMillis converts a millimeter length into the unit U.
func FromMillis[U Unit](m Millis) U {
	var zero U
	return U(float64(m) / zero.MillisPerUnit())
}

// Convert re-expresses a length given in one unit family in another.
func Convert[From, To Unit](v From) To {
	return FromMillis[To](ToMillis(v))
}

func format(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
