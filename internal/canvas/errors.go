/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package canvas

import (
	"errors"
	"fmt"

	"penplot/internal/vector"
)

var (
	// ErrUnknownLayer is returned, or panicked with, for a key that was never
	// issued by the canvas or whose layer has been removed.
	ErrUnknownLayer = errors.New("unknown layer")
	// ErrUnsupportedCommand marks path commands whose extent view fitting
	// cannot compute.
	ErrUnsupportedCommand = errors.New("unsupported path command")
)

// LayerError reports an operation on an unknown layer key.
type LayerError struct {
	Op  string
	Key LayerKey
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, ErrUnknownLayer)
}

func (e *LayerError) Unwrap() error { return ErrUnknownLayer }

// UnsupportedCommandError names the command that stopped view fitting.
type UnsupportedCommandError struct {
	Op    vector.Op
	Layer LayerKey
	Path  int
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("fit view: %s in %s path %d: %v", e.Op, e.Layer, e.Path, ErrUnsupportedCommand)
}

func (e *UnsupportedCommandError) Unwrap() error { return ErrUnsupportedCommand }
