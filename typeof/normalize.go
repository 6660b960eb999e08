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

package typeof

import (
	"errors"
	"path"
	"reflect"
	"strings"
	"sync"
)

// DefaultMaxUnwrap is the container unwrapping depth used when a caller
// passes a non-positive limit.
const DefaultMaxUnwrap = 8

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("extensible(typeof): nil reflect.Type provided")
	// ErrNotNamed indicates that the provided type (after unwrapping containers)
	// does not contain a named type (e.g., anonymous struct, func, interface{}).
	ErrNotNamed = errors.New("extensible(typeof): type has no nearest named type")
)

// Nearest unwraps containers and returns the nearest named inner type, or an
// error if none is found within maxUnwrap steps.
//
// Unwrapping policy:
//   - ptr/slice/array/chan  -> Elem()
//   - map[K]V: try the preferred side first (Elem if preferElem; otherwise Key);
//     if the preferred side is named, return it;
//     else try the other side; if still unnamed, continue unwrapping Elem().
//   - default: if t.Name() != "", return t; otherwise ErrNotNamed.
func Nearest(t reflect.Type, maxUnwrap int, preferElem bool) (reflect.Type, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if maxUnwrap <= 0 {
		maxUnwrap = DefaultMaxUnwrap
	}

	for i := 0; t != nil && i < maxUnwrap; i++ {
		switch t.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()

		case reflect.Map:
			first, second := t.Elem(), t.Key()
			if !preferElem {
				first, second = second, first
			}
			if first.Name() != "" {
				return first, nil
			}
			if second.Name() != "" {
				return second, nil
			}
			// Neither side named: keep unwrapping element
			t = t.Elem()

		default:
			if t.Name() != "" {
				return t, nil
			}
			return nil, ErrNotNamed
		}
	}

	if t != nil && t.Name() != "" {
		return t, nil
	}
	return nil, ErrNotNamed
}

// nameKey makes the name cache respect every knob that affects the result.
type nameKey struct {
	t              reflect.Type
	includeBuiltin bool
	maxUnwrap      int16
	preferElem     bool
}

// nameCache memoizes SimpleName results.
var nameCache sync.Map // key: nameKey, val: string

// SimpleName returns a short "pkg.Type" name for the nearest named type of t,
// with generic instantiation parameters stripped. Builtin names are returned
// only when includeBuiltins is set; otherwise, and when no named type can be
// reached, the result is "".
func SimpleName(t reflect.Type, maxUnwrap int, preferElem, includeBuiltins bool) string {
	if t == nil {
		return ""
	}
	key := nameKey{
		t:              t,
		includeBuiltin: includeBuiltins,
		maxUnwrap:      int16(maxUnwrap),
		preferElem:     preferElem,
	}
	if v, ok := nameCache.Load(key); ok {
		return v.(string)
	}

	base, err := Nearest(t, maxUnwrap, preferElem)
	if err != nil {
		nameCache.Store(key, "")
		return ""
	}

	name := stripTypeParams(base.Name())
	if p := base.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	} else if !includeBuiltins {
		name = ""
	}

	nameCache.Store(key, name)
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
