/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package strategy provides ready-made delegates for the hook and parent
// slots of an extensible object: a map-backed source of values and a
// function-backed "missing attribute" hook.
package strategy

import (
	"maps"

	"dirpx.dev/extensible/apis"
)

// NewMapStrategy creates a delegate that serves the entries of values.
// Writes are claimed only for keys already present (unless Open is set);
// callable values are invocable as methods.
func NewMapStrategy(displayName string, values map[string]any) *MapStrategy {
	if values == nil {
		values = make(map[string]any)
	}
	return &MapStrategy{name: displayName, values: values}
}

// MapStrategy is a delegate over a caller-owned map.
type MapStrategy struct {
	name   string
	values map[string]any
	// Open makes the strategy claim writes for any name.
	Open bool
}

// Ensure MapStrategy implements apis.Delegate.
var _ apis.Delegate = (*MapStrategy)(nil)

// DisplayName implements apis.Delegate.
func (s *MapStrategy) DisplayName() string { return s.name }

// HasProperty implements apis.Delegate.
func (s *MapStrategy) HasProperty(name string) bool {
	_, ok := s.values[name]
	return ok
}

// TryGet implements apis.Delegate.
func (s *MapStrategy) TryGet(name string) (any, bool) {
	v, ok := s.values[name]
	return v, ok
}

// TrySet implements apis.Delegate.
func (s *MapStrategy) TrySet(name string, value any) (bool, error) {
	if _, ok := s.values[name]; !ok && !s.Open {
		return false, nil
	}
	s.values[name] = value
	return true, nil
}

// Properties implements apis.Delegate.
func (s *MapStrategy) Properties() map[string]any {
	return maps.Clone(s.values)
}

// HasMethod implements apis.Delegate.
func (s *MapStrategy) HasMethod(name string, _ ...any) bool {
	_, ok := apis.AsCallable(s.values[name])
	return ok
}

// TryInvoke implements apis.Delegate.
func (s *MapStrategy) TryInvoke(name string, args ...any) (any, bool, error) {
	c, ok := apis.AsCallable(s.values[name])
	if !ok {
		return nil, false, nil
	}
	res, err := c.Call(args...)
	return res, true, err
}
