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

package resolver

import (
	"dirpx.dev/extensible/apis"
)

// PropertiesKey is the reserved key under which Properties exposes the
// merged map itself.
const PropertiesKey = "properties"

// Option configures a Composite.
type Option func(*Composite)

// WithWriteDelegates sets the delegates scanned by writes. By default
// writes scan the same delegates as reads.
func WithWriteDelegates(updates []apis.Delegate) Option {
	return func(c *Composite) {
		c.updates = updates
	}
}

// WithDisplayName overrides the owner name used in errors and DisplayName.
// By default it is the display name of the first non-nil delegate.
func WithDisplayName(fn func() string) Option {
	return func(c *Composite) {
		c.display = fn
	}
}

// WithPropertyMethods makes callable property values invocable as methods
// once no delegate claims the call.
func WithPropertyMethods(enabled bool) Option {
	return func(c *Composite) {
		c.propertyMethods = enabled
	}
}

// New constructs a Composite scanning objects in order. Nil entries are
// skipped. The slices are not copied: callers that own the backing arrays
// may swap entries in place and every later call observes the change.
func New(objects []apis.Delegate, opts ...Option) *Composite {
	c := &Composite{objects: objects, updates: objects}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Composite answers attribute operations by scanning an ordered list of
// delegates. The first delegate that reports found wins.
type Composite struct {
	objects         []apis.Delegate
	updates         []apis.Delegate
	display         func() string
	propertyMethods bool
}

// Ensure Composite implements apis.Resolver.
var _ apis.Resolver = (*Composite)(nil)

// DisplayName implements apis.Delegate.
func (c *Composite) DisplayName() string {
	if c.display != nil {
		return c.display()
	}
	for _, d := range c.objects {
		if d != nil {
			return d.DisplayName()
		}
	}
	return "object"
}

// HasProperty implements apis.Delegate.
func (c *Composite) HasProperty(name string) bool {
	for _, d := range c.objects {
		if d != nil && d.HasProperty(name) {
			return true
		}
	}
	return false
}

// TryGet implements apis.Delegate.
func (c *Composite) TryGet(name string) (any, bool) {
	for _, d := range c.objects {
		if d == nil {
			continue
		}
		if v, ok := d.TryGet(name); ok {
			return v, true
		}
	}
	return nil, false
}

// TrySet implements apis.Delegate. The scan stops at the first delegate
// that claims the write or fails.
func (c *Composite) TrySet(name string, value any) (bool, error) {
	for _, d := range c.updates {
		if d == nil {
			continue
		}
		found, err := d.TrySet(name, value)
		if err != nil {
			return found, err
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}

// Properties implements apis.Delegate. Delegates are merged from last to
// first so that earlier ones win, and the result holds itself under
// PropertiesKey.
func (c *Composite) Properties() map[string]any {
	out := make(map[string]any)
	for i := len(c.objects) - 1; i >= 0; i-- {
		d := c.objects[i]
		if d == nil {
			continue
		}
		for k, v := range d.Properties() {
			out[k] = v
		}
	}
	out[PropertiesKey] = out
	return out
}

// HasMethod implements apis.Delegate.
func (c *Composite) HasMethod(name string, args ...any) bool {
	for _, d := range c.objects {
		if d != nil && d.HasMethod(name, args...) {
			return true
		}
	}
	if c.propertyMethods {
		_, ok := c.callableProperty(name)
		return ok
	}
	return false
}

// TryInvoke implements apis.Delegate.
func (c *Composite) TryInvoke(name string, args ...any) (any, bool, error) {
	for _, d := range c.objects {
		if d == nil {
			continue
		}
		res, found, err := d.TryInvoke(name, args...)
		if err != nil || found {
			return res, found, err
		}
	}
	if c.propertyMethods {
		if fn, ok := c.callableProperty(name); ok {
			res, err := fn.Call(args...)
			return res, true, err
		}
	}
	return nil, false, nil
}

func (c *Composite) callableProperty(name string) (apis.Callable, bool) {
	v, ok := c.TryGet(name)
	if !ok {
		return nil, false
	}
	return apis.AsCallable(v)
}

// Property implements apis.Resolver.
func (c *Composite) Property(name string) (any, error) {
	if v, ok := c.TryGet(name); ok {
		return v, nil
	}
	return nil, &apis.MissingPropertyError{Name: name, Owner: c.DisplayName()}
}

// SetProperty implements apis.Resolver.
func (c *Composite) SetProperty(name string, value any) error {
	found, err := c.TrySet(name, value)
	if err != nil {
		return err
	}
	if !found {
		return &apis.MissingPropertyError{Name: name, Owner: c.DisplayName(), Set: true}
	}
	return nil
}

// InvokeMethod implements apis.Resolver.
func (c *Composite) InvokeMethod(name string, args ...any) (any, error) {
	res, found, err := c.TryInvoke(name, args...)
	if err != nil {
		return res, err
	}
	if !found {
		return nil, &apis.MissingMethodError{Name: name, Owner: c.DisplayName(), Args: args}
	}
	return res, nil
}
