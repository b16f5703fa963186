/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package sketch

import (
	"iter"
	"math"
	"math/rand/v2"

	"penplot/internal/canvas"
	"penplot/internal/vector"
)

type (
	normal = vector.NormalSpace
	space  = vector.CanvasSpace
)

func init() {
	Register(Func{ID: "grid", Description: "jittered grid of squares, a few in red", Fn: drawGrid})
	Register(Func{ID: "circles", Description: "scattered circles and polygons in canvas units", Fn: drawCircles})
	Register(Func{ID: "waves", Description: "stacked sine waves with random phase", Fn: drawWaves})
}

const gridCells = 10

func drawGrid(s canvas.Surface, rng *rand.Rand) error {
	black := s.CreateLayer(vector.BlackFineliner)
	red := s.CreateLayer(vector.RedFineliner)
	cell := 1.0 / gridCells
	side := cell * 0.7
	var blacks, reds vector.PathList[normal]
	for row := range gridCells {
		for col := range gridCells {
			cx, cy := (float64(col)+0.5)*cell, (float64(row)+0.5)*cell
			// jitter grows towards the bottom of the sheet
			angle := (rng.Float64()*2 - 1) * float64(row) / gridCells * math.Pi / 4
			t := vector.Then(
				vector.Translation[normal, normal](-cx, -cy),
				vector.Rotation[normal, normal](angle),
			).ThenTranslate(cx, cy)
			sq := t.ApplyPath(vector.Rect(vector.Pt[normal](cx-side/2, cy-side/2), side, side))
			if rng.IntN(10) == 0 {
				reds = append(reds, sq)
			} else {
				blacks = append(blacks, sq)
			}
		}
	}
	s.DrawN(black, blacks)
	s.DrawN(red, reds)
	return nil
}

func drawCircles(s canvas.Surface, rng *rand.Rand) error {
	w, h := s.DrawableSize()
	blue := s.CreateLayer(vector.BlueFineliner)
	black := s.CreateLayer(vector.BlackFineliner)
	maxR := min(w, h) / 8
	var circles, polys vector.Group[space]
	for range 40 {
		r := maxR * (0.2 + 0.8*rng.Float64())
		c := vector.Pt[space](r+rng.Float64()*(w-2*r), r+rng.Float64()*(h-2*r))
		if rng.IntN(3) == 0 {
			polys = append(polys, vector.RegularPolygon(c, r, 3+rng.IntN(5), rng.Float64()*math.Pi))
		} else {
			circles = append(circles, vector.Circle(c, r))
		}
	}
	s.Draw(blue, circles)
	s.DrawMany(black, polys...)
	// frame around the drawable area
	s.Draw(black, vector.Rect(vector.Pt[space](0, 0), w, h))
	return nil
}

const (
	waveCount   = 24
	waveSamples = 200
)

func drawWaves(s canvas.Surface, rng *rand.Rand) error {
	layer := s.CreateLayer(vector.BlackFineliner)
	phases := make([]float64, waveCount)
	freqs := make([]float64, waveCount)
	for i := range phases {
		phases[i] = rng.Float64() * 2 * math.Pi
		freqs[i] = 1 + rng.Float64()*3
	}
	amp := 0.4 / waveCount
	waves := vector.PathSeq[normal](func(yield func(vector.Path[normal]) bool) {
		for i := range waveCount {
			base := (float64(i) + 0.5) / waveCount
			pts := make([]vector.Point[normal], 0, waveSamples+1)
			for x := range samples(waveSamples) {
				y := base + amp*math.Sin(2*math.Pi*freqs[i]*x+phases[i])
				pts = append(pts, vector.Pt[normal](x, y))
			}
			if !yield(vector.NewPolyline(pts...).Path()) {
				return
			}
		}
	})
	s.DrawN(layer, waves)
	return nil
}

// samples yields n+1 evenly spaced values from 0 to 1.
func samples(n int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := 0; i <= n; i++ {
			if !yield(float64(i) / float64(n)) {
				return
			}
		}
	}
}
