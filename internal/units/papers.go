/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package units

import (
	"sort"
	"strings"
)

// Well-known sheet sizes in portrait orientation. The table is built once and
// never modified; Lookup hands out copies.
var papers = map[string]Paper[Millis]{
	"a0":      {Width: 841, Height: 1189},
	"a1":      {Width: 594, Height: 841},
	"a2":      {Width: 420, Height: 594},
	"a3":      {Width: 297, Height: 420},
	"a4":      {Width: 210, Height: 297},
	"a5":      {Width: 148, Height: 210},
	"a6":      {Width: 105, Height: 147},
	"a7":      {Width: 74, Height: 105},
	"a8":      {Width: 52, Height: 74},
	"a9":      {Width: 37, Height: 52},
	"a10":     {Width: 26, Height: 37},
	"letter":  {Width: 215.9, Height: 279.4},
	"legal":   {Width: 215.9, Height: 355.6},
	"tabloid": {Width: 279.4, Height: 431.8},
}

// Lookup returns the named sheet without margins. Names are case-insensitive and
// accept an optional "din" prefix ("DIN_A4", "din-a4", "A4").
func Lookup(name string) (Paper[Millis], bool) {
	p, ok := papers[normalizeName(name)]
	return p, ok
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Paper[Millis] {
	p, ok := Lookup(name)
	if !ok {
		panic("units: unknown paper " + name)
	}
	return p
}

// Names lists the known sheet names in a stable order.
func Names() []string {
	out := make([]string, 0, len(papers))
	for k := range papers {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := papers[out[i]], papers[out[j]]
		if pi.Width != pj.Width {
			return pi.Width > pj.Width
		}
		return out[i] < out[j]
	})
	return out
}

func normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer("_", "", "-", "", " ", "").Replace(n)
	return strings.TrimPrefix(n, "din")
}
