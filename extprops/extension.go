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

// Package extprops implements the extra-properties bag: an ordered set of
// free-form name/value pairs every extension registry reserves under the
// name "ext", plus the adapter that lets a host object see those pairs as
// its own attributes.
package extprops

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/typeof"
)

// Name is the reserved extension name the bag is registered under.
const Name = "ext"

// DisplayName is the owner name used in diagnostics.
const DisplayName = "extra properties"

// Type is the capability type the bag is registered with.
var Type = typeof.Of[*Extension]()

// Extension is an insertion-ordered bag of arbitrary properties.
// Names are not validated and any name may be written.
type Extension struct {
	props *orderedmap.OrderedMap[string, any]
}

var _ apis.Delegate = (*Extension)(nil)

// New returns an empty bag.
func New() *Extension {
	return &Extension{props: orderedmap.New[string, any]()}
}

// Has reports whether name has been set (a nil value counts).
func (e *Extension) Has(name string) bool {
	_, ok := e.props.Get(name)
	return ok
}

// Find returns the value of name.
func (e *Extension) Find(name string) (any, bool) {
	return e.props.Get(name)
}

// Get returns the value of name or a *apis.MissingPropertyError.
func (e *Extension) Get(name string) (any, error) {
	if v, ok := e.props.Get(name); ok {
		return v, nil
	}
	return nil, &apis.MissingPropertyError{Name: name, Owner: DisplayName}
}

// Set stores value under name, keeping the original position of an existing name.
func (e *Extension) Set(name string, value any) {
	e.props.Set(name, value)
}

// Remove deletes name and reports whether it was present.
func (e *Extension) Remove(name string) bool {
	_, ok := e.props.Delete(name)
	return ok
}

// Len returns the number of properties.
func (e *Extension) Len() int { return e.props.Len() }

// Names returns the property names in insertion order.
func (e *Extension) Names() []string {
	out := make([]string, 0, e.props.Len())
	for p := e.props.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Ordered returns an ordered snapshot of the bag.
func (e *Extension) Ordered() *orderedmap.OrderedMap[string, any] {
	m := orderedmap.New[string, any]()
	for p := e.props.Oldest(); p != nil; p = p.Next() {
		m.Set(p.Key, p.Value)
	}
	return m
}

// DisplayName implements apis.Delegate.
func (e *Extension) DisplayName() string { return DisplayName }

// HasProperty implements apis.Delegate.
func (e *Extension) HasProperty(name string) bool { return e.Has(name) }

// TryGet implements apis.Delegate.
func (e *Extension) TryGet(name string) (any, bool) { return e.Find(name) }

// TrySet implements apis.Delegate. The bag claims every write.
func (e *Extension) TrySet(name string, value any) (bool, error) {
	e.Set(name, value)
	return true, nil
}

// Properties implements apis.Delegate.
func (e *Extension) Properties() map[string]any {
	out := make(map[string]any, e.props.Len())
	for p := e.props.Oldest(); p != nil; p = p.Next() {
		out[p.Key] = p.Value
	}
	return out
}

// HasMethod implements apis.Delegate: a callable property is a method.
func (e *Extension) HasMethod(name string, _ ...any) bool {
	v, ok := e.props.Get(name)
	if !ok {
		return false
	}
	_, ok = apis.AsCallable(v)
	return ok
}

// TryInvoke implements apis.Delegate by calling a callable property.
func (e *Extension) TryInvoke(name string, args ...any) (any, bool, error) {
	v, ok := e.props.Get(name)
	if !ok {
		return nil, false, nil
	}
	c, ok := apis.AsCallable(v)
	if !ok {
		return nil, false, nil
	}
	res, err := c.Call(args...)
	return res, true, err
}
