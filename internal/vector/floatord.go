/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package vector

import "math"

// TotalCompare orders float64 values totally: IEEE order for non-NaN values
// with -0 before +0, and every NaN after +Inf. All NaNs compare equal.
// It returns -1, 0 or +1.
func TotalCompare(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	// equal under IEEE; only the zero signs can still differ
	sa, sb := math.Signbit(a), math.Signbit(b)
	switch {
	case sa == sb:
		return 0
	case sa:
		return -1
	default:
		return 1
	}
}

// FloatOrd wraps a float64 so it can be sorted with TotalCompare.
type FloatOrd float64

func (f FloatOrd) Compare(o FloatOrd) int { return TotalCompare(float64(f), float64(o)) }

// MinOrd returns the smaller of a and b under TotalCompare.
func MinOrd(a, b float64) float64 {
	if TotalCompare(b, a) < 0 {
		return b
	}
	return a
}

// MaxOrd returns the larger of a and b under TotalCompare.
func MaxOrd(a, b float64) float64 {
	if TotalCompare(b, a) > 0 {
		return b
	}
	return a
}
