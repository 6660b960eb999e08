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

package extensible

import (
	"dirpx.dev/extensible/apis"
	"dirpx.dev/extensible/resolver"
)

// InheritedView exposes what a child scope inherits from an Object: its
// extra properties, before-convention hook, extensions, conventions and
// parent. The host itself and the after-convention hook are not visible.
// Every write fails, and callable property values are not invocable as
// methods through the view.
type InheritedView struct {
	owner *Object
	c     *resolver.Composite
}

var _ apis.Resolver = (*InheritedView)(nil)

func newInheritedView(owner *Object, slots []apis.Delegate) *InheritedView {
	return &InheritedView{
		owner: owner,
		c:     resolver.New(slots, resolver.WithDisplayName(owner.DisplayName)),
	}
}

func (v *InheritedView) readOnly(name string) error {
	return &apis.InheritedPropertyError{Name: name, Owner: v.owner.DisplayName()}
}

// DisplayName implements apis.Delegate.
func (v *InheritedView) DisplayName() string { return v.c.DisplayName() }

// HasProperty implements apis.Delegate.
func (v *InheritedView) HasProperty(name string) bool { return v.c.HasProperty(name) }

// TryGet implements apis.Delegate.
func (v *InheritedView) TryGet(name string) (any, bool) { return v.c.TryGet(name) }

// TrySet implements apis.Delegate. It claims every write and rejects it.
func (v *InheritedView) TrySet(name string, _ any) (bool, error) {
	return true, v.readOnly(name)
}

// Properties implements apis.Delegate.
func (v *InheritedView) Properties() map[string]any { return v.c.Properties() }

// HasMethod implements apis.Delegate.
func (v *InheritedView) HasMethod(name string, args ...any) bool {
	return v.c.HasMethod(name, args...)
}

// TryInvoke implements apis.Delegate.
func (v *InheritedView) TryInvoke(name string, args ...any) (any, bool, error) {
	return v.c.TryInvoke(name, args...)
}

// Property implements apis.Resolver.
func (v *InheritedView) Property(name string) (any, error) { return v.c.Property(name) }

// SetProperty implements apis.Resolver.
func (v *InheritedView) SetProperty(name string, _ any) error { return v.readOnly(name) }

// InvokeMethod implements apis.Resolver.
func (v *InheritedView) InvokeMethod(name string, args ...any) (any, error) {
	return v.c.InvokeMethod(name, args...)
}
