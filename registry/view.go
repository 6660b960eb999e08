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

package registry

import "dirpx.dev/extensible/apis"

// DisplayName is the owner name of the extensions view.
const DisplayName = "extensions"

// AsDelegate exposes the registered extensions as attributes of a host.
//
//   - every extension is a read-only property named after it;
//   - writing a registered name fails with *apis.ReassignmentError, any
//     other write falls through;
//   - invoking a registered name with a single configuration callback
//     configures that extension and returns it.
func (r *Registry) AsDelegate() apis.Delegate {
	return view{r: r}
}

type view struct {
	r *Registry
}

var _ apis.Delegate = view{}

func (v view) DisplayName() string { return DisplayName }

func (v view) HasProperty(name string) bool { return v.r.Has(name) }

func (v view) TryGet(name string) (any, bool) { return v.r.FindByName(name) }

func (v view) TrySet(name string, _ any) (bool, error) {
	if v.r.Has(name) {
		return false, &apis.ReassignmentError{Name: name}
	}
	return false, nil
}

func (v view) Properties() map[string]any {
	out := make(map[string]any, v.r.store.Len())
	for _, e := range v.r.store.Entries() {
		out[e.Name] = e.Instance
	}
	return out
}

func (v view) HasMethod(name string, args ...any) bool {
	_, ok := configureArg(args)
	return ok && v.r.Has(name)
}

func (v view) TryInvoke(name string, args ...any) (any, bool, error) {
	cb, ok := configureArg(args)
	if !ok || !v.r.Has(name) {
		return nil, false, nil
	}
	obj, err := v.r.ConfigureByName(name, cb)
	return obj, true, err
}

// configureArg matches the "name { ... }" form: exactly one callback argument.
func configureArg(args []any) (apis.Callback, bool) {
	if len(args) != 1 {
		return nil, false
	}
	return apis.AsCallback(args[0])
}
