/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import (
	"penplot/internal/units"
	"penplot/internal/vector"
)

// Surface is the drawing side of a Canvas without its paper unit. Sketches
// draw through it.
type Surface interface {
	CreateLayer(pen vector.Pen) LayerKey
	Draw(key LayerKey, d vector.ToPaths[vector.CanvasSpace])
	DrawMany(key LayerKey, ds ...vector.ToPaths[vector.CanvasSpace])
	DrawN(key LayerKey, d vector.ToPaths[vector.NormalSpace])
	DrawNMany(key LayerKey, ds ...vector.ToPaths[vector.NormalSpace])
	// DrawableSize is the drawable area in paper units.
	DrawableSize() (w, h float64)
}

var (
	_ Surface                            = (*Canvas[units.Millis])(nil)
	_ vector.ToPaths[vector.CanvasSpace] = (*Canvas[units.Inches])(nil)
	_ vector.ToPaths[vector.CanvasSpace] = (*Layer)(nil)
)
