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

// Package bean adapts arbitrary Go values into attribute delegates using
// reflection: exported struct fields become properties and exported
// methods become invocable methods.
package bean

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/typeof"
)

// DefaultDisplayName is used when a value has no usable type name.
const DefaultDisplayName = "object"

// Bean is the reflective Delegate over one value.
type Bean struct {
	obj  any
	v    reflect.Value // obj, never a pointer-to-pointer
	s    reflect.Value // dereferenced struct, invalid if obj is not a struct
	cfg  apis.Config
	name string
}

var _ apis.Delegate = (*Bean)(nil)

// New wraps obj. Pass a pointer to a struct to make its fields writable.
func New(obj any, cfg apis.Config) *Bean {
	b := &Bean{obj: obj, cfg: cfg, v: reflect.ValueOf(obj)}
	s := b.v
	for s.IsValid() && s.Kind() == reflect.Ptr && !s.IsNil() {
		s = s.Elem()
	}
	if s.IsValid() && s.Kind() == reflect.Struct {
		b.s = s
	}
	b.name = displayName(obj, cfg)
	return b
}

// Factory returns an apis.BeanFactory bound to cfg.
func Factory(cfg apis.Config) apis.BeanFactory {
	return func(obj any) apis.Delegate { return New(obj, cfg) }
}

// Unwrap returns the wrapped value.
func (b *Bean) Unwrap() any { return b.obj }

func displayName(obj any, cfg apis.Config) string {
	if obj == nil {
		return DefaultDisplayName
	}
	if s, ok := obj.(fmt.Stringer); ok {
		if n := s.String(); n != "" {
			return n
		}
	}
	if n := typeof.SimpleName(reflect.TypeOf(obj), cfg.MaxUnwrap, cfg.MapPreferElem, cfg.IncludeBuiltins); n != "" {
		return n
	}
	return DefaultDisplayName
}

// DisplayName implements apis.Delegate.
func (b *Bean) DisplayName() string { return b.name }

// field resolves a property name to a field of the wrapped struct.
func (b *Bean) field(name string) (reflect.Value, bool) {
	if !b.s.IsValid() || name == "" {
		return reflect.Value{}, false
	}
	for _, f := range reflect.VisibleFields(b.s.Type()) {
		if f.Anonymous || !f.IsExported() {
			continue
		}
		if propertyName(f, b.cfg.FieldTag) != name {
			continue
		}
		fv, err := b.s.FieldByIndexErr(f.Index)
		if err != nil {
			// promoted through a nil embedded pointer
			return reflect.Value{}, false
		}
		return fv, true
	}
	return reflect.Value{}, false
}

// propertyName is the tag name when present, else the field name with a
// lower-case first rune. A "-" tag hides the field.
func propertyName(f reflect.StructField, tag string) string {
	if tag != "" {
		if v, ok := f.Tag.Lookup(tag); ok {
			n, _, _ := strings.Cut(v, ",")
			if n == "-" {
				return ""
			}
			if n != "" {
				return n
			}
		}
	}
	return lowerFirst(f.Name)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// HasProperty implements apis.Delegate.
func (b *Bean) HasProperty(name string) bool {
	_, ok := b.field(name)
	return ok
}

// TryGet implements apis.Delegate.
func (b *Bean) TryGet(name string) (any, bool) {
	fv, ok := b.field(name)
	if !ok {
		return nil, false
	}
	return fv.Interface(), true
}

// TrySet implements apis.Delegate. A known property that cannot take value
// fails with an error matching apis.ErrNotAssignable.
func (b *Bean) TrySet(name string, value any) (bool, error) {
	fv, ok := b.field(name)
	if !ok {
		return false, nil
	}
	if !fv.CanSet() {
		return true, fmt.Errorf("property '%s' of %s is read-only: %w", name, b.name, apis.ErrNotAssignable)
	}
	rv, ok := Coerce(value, fv.Type())
	if !ok {
		return true, &apis.AssignmentError{
			Name:  name,
			Owner: b.name,
			Want:  typeof.FromReflect(fv.Type()).String(),
			Got:   typeof.OfValue(value).String(),
		}
	}
	fv.Set(rv)
	return true, nil
}

// Properties implements apis.Delegate.
func (b *Bean) Properties() map[string]any {
	out := make(map[string]any)
	if !b.s.IsValid() {
		return out
	}
	for _, f := range reflect.VisibleFields(b.s.Type()) {
		if f.Anonymous || !f.IsExported() {
			continue
		}
		n := propertyName(f, b.cfg.FieldTag)
		if n == "" {
			continue
		}
		if _, dup := out[n]; dup {
			continue
		}
		if fv, err := b.s.FieldByIndexErr(f.Index); err == nil {
			out[n] = fv.Interface()
		}
	}
	return out
}

// method finds an exported method by its exact name or with the first
// rune upper-cased ("compile" -> Compile).
func (b *Bean) method(name string) (reflect.Value, bool) {
	if !b.v.IsValid() || name == "" {
		return reflect.Value{}, false
	}
	if m := b.v.MethodByName(name); m.IsValid() {
		return m, true
	}
	if up := upperFirst(name); up != name {
		if m := b.v.MethodByName(up); m.IsValid() {
			return m, true
		}
	}
	return reflect.Value{}, false
}

// HasMethod implements apis.Delegate.
func (b *Bean) HasMethod(name string, args ...any) bool {
	m, ok := b.method(name)
	if !ok {
		return false
	}
	_, ok = callArgs(m.Type(), args)
	return ok
}

// TryInvoke implements apis.Delegate. A method whose signature does not
// accept args is reported as not found.
func (b *Bean) TryInvoke(name string, args ...any) (any, bool, error) {
	m, ok := b.method(name)
	if !ok {
		return nil, false, nil
	}
	in, ok := callArgs(m.Type(), args)
	if !ok {
		return nil, false, nil
	}
	res, err := results(m.Call(in))
	return res, true, err
}
