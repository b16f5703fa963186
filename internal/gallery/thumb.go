/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package gallery

import (
	"bytes"
	"image"
	"image/png"
	"math"

	"golang.org/x/image/draw"
)

// DefaultThumbSize bounds the longer side of a thumbnail, in pixels.
const DefaultThumbSize = 256

// makeThumbnail downscales img to fit a size x size box and encodes it as PNG.
// Images that already fit are kept at their size.
func makeThumbnail(img image.Image, size int) (data []byte, w, h int, err error) {
	if size <= 0 {
		size = DefaultThumbSize
	}
	b := img.Bounds()
	scale := math.Min(1, math.Min(float64(size)/float64(b.Dx()), float64(size)/float64(b.Dy())))
	w = max(1, int(math.Round(float64(b.Dx())*scale)))
	h = max(1, int(math.Round(float64(b.Dy())*scale)))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, 0, 0, err
	}
	return buf.Bytes(), w, h, nil
}
