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
	"reflect"
	"strings"
	"sync"
)

// Type is a capability type descriptor. It wraps a reflect.Type, so two
// Types are equal exactly when they describe the same Go type, generic
// arguments included. The zero Type describes nothing.
type Type struct {
	rt reflect.Type
}

// Of returns the Type of T. Interface types are preserved, so Of[io.Reader]()
// describes the interface rather than a concrete implementation.
func Of[T any]() Type {
	return Type{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// FromReflect wraps rt. A nil rt yields the zero Type.
func FromReflect(rt reflect.Type) Type {
	return Type{rt: rt}
}

// OfValue returns the dynamic type of v. A nil v yields the zero Type.
func OfValue(v any) Type {
	if v == nil {
		return Type{}
	}
	return Type{rt: reflect.TypeOf(v)}
}

// Reflect returns the underlying reflect.Type (nil for the zero Type).
func (t Type) Reflect() reflect.Type { return t.rt }

// IsZero reports whether t describes nothing.
func (t Type) IsZero() bool { return t.rt == nil }

// Equal reports whether t and o describe the same type.
func (t Type) Equal(o Type) bool { return t.rt == o.rt }

// IsAssignableFrom reports whether values of type o may be stored in a
// location of type t.
func (t Type) IsAssignableFrom(o Type) bool {
	if t.rt == nil || o.rt == nil {
		return false
	}
	return o.rt.AssignableTo(t.rt)
}

// IsInstance reports whether v's dynamic type is assignable to t.
// A nil v is an instance of interface, pointer, map, slice, chan and func types.
func (t Type) IsInstance(v any) bool {
	if t.rt == nil {
		return false
	}
	if v == nil {
		switch t.rt.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return true
		}
		return false
	}
	return reflect.TypeOf(v).AssignableTo(t.rt)
}

// String renders the full type with package paths shortened to their last
// element, e.g. "*registry.Box[storage.Entry]". The zero Type renders "<nil>".
func (t Type) String() string {
	if t.rt == nil {
		return "<nil>"
	}
	if v, ok := displayCache.Load(t.rt); ok {
		return v.(string)
	}
	s := shortenPaths(t.rt.String())
	displayCache.Store(t.rt, s)
	return s
}

// MarshalText implements encoding.TextMarshaler with the String form.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

var displayCache sync.Map // key: reflect.Type, val: string

// shortenPaths drops import path prefixes from every qualified identifier in s.
// reflect already renders top-level names with the package name, but generic
// arguments carry the full import path.
func shortenPaths(s string) string {
	if !strings.ContainsRune(s, '/') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	start := 0
	flush := func(end int) {
		tok := s[start:end]
		if i := strings.LastIndexByte(tok, '/'); i >= 0 {
			tok = tok[i+1:]
		}
		b.WriteString(tok)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', ']', '(', ')', ',', '*', ' ':
			flush(i)
			b.WriteByte(s[i])
			start = i + 1
		}
	}
	flush(len(s))
	return b.String()
}
