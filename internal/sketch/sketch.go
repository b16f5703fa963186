/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package sketch holds the built-in generative drawings. A sketch draws onto a
// canvas.Surface with a seeded random source, so a name and a seed always
// produce the same document.
package sketch

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"sync"

	"penplot/internal/canvas"
)

// Sketch is a named drawing procedure.
type Sketch interface {
	Name() string
	Describe() string
	Draw(s canvas.Surface, rng *rand.Rand) error
}

// Func adapts a function to Sketch.
type Func struct {
	ID          string
	Description string
	Fn          func(s canvas.Surface, rng *rand.Rand) error
}

func (f Func) Name() string     { return f.ID }
func (f Func) Describe() string { return f.Description }

func (f Func) Draw(s canvas.Surface, rng *rand.Rand) error { return f.Fn(s, rng) }

var (
	mu       sync.RWMutex
	registry = map[string]Sketch{}
)

// Register adds s to the registry. It panics on a duplicate name.
func Register(s Sketch) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[s.Name()]; dup {
		panic("sketch: duplicate name " + s.Name())
	}
	registry[s.Name()] = s
}

// Lookup returns the registered sketch called name.
func Lookup(name string) (Sketch, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown sketch %q", name)
	}
	return s, nil
}

// Names lists the registered sketches alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// NewRand returns the deterministic random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Run draws s onto surf with the source for seed.
func Run(s Sketch, surf canvas.Surface, seed uint64) error {
	return s.Draw(surf, NewRand(seed))
}
