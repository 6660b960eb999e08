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

package strategy

import (
	"dirpx.dev/extensible/apis"
)

// Funcs is a delegate built from optional hook functions, typically used as
// a post-hook that answers for attributes nothing else knows. A nil hook
// never claims anything.
type Funcs struct {
	// Name is the display name; empty means "hooks".
	Name string
	// Get answers property reads.
	Get func(name string) (any, bool)
	// Set answers property writes.
	Set func(name string, value any) (bool, error)
	// Invoke answers method calls.
	Invoke func(name string, args ...any) (any, bool, error)
	// Methods answers HasMethod; without it, HasMethod reports false.
	Methods func(name string, args ...any) bool
}

// Ensure Funcs implements apis.Delegate.
var _ apis.Delegate = (*Funcs)(nil)

// DisplayName implements apis.Delegate.
func (f *Funcs) DisplayName() string {
	if f.Name == "" {
		return "hooks"
	}
	return f.Name
}

// HasProperty implements apis.Delegate by probing Get.
func (f *Funcs) HasProperty(name string) bool {
	_, ok := f.TryGet(name)
	return ok
}

// TryGet implements apis.Delegate.
func (f *Funcs) TryGet(name string) (any, bool) {
	if f.Get == nil {
		return nil, false
	}
	return f.Get(name)
}

// TrySet implements apis.Delegate.
func (f *Funcs) TrySet(name string, value any) (bool, error) {
	if f.Set == nil {
		return false, nil
	}
	return f.Set(name, value)
}

// Properties implements apis.Delegate. Hooks cannot enumerate what they
// answer, so the result is always empty.
func (f *Funcs) Properties() map[string]any { return map[string]any{} }

// HasMethod implements apis.Delegate.
func (f *Funcs) HasMethod(name string, args ...any) bool {
	if f.Methods == nil {
		return false
	}
	return f.Methods(name, args...)
}

// TryInvoke implements apis.Delegate.
func (f *Funcs) TryInvoke(name string, args ...any) (any, bool, error) {
	if f.Invoke == nil {
		return nil, false, nil
	}
	return f.Invoke(name, args...)
}
