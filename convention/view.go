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

package convention

import "dirpx.dev/extensible/apis"

// DisplayName is the owner name of the conventions view.
const DisplayName = "conventions"

// AsDelegate exposes the attributes of every plugin object. Single lookups
// scan plugins in insertion order and the first match wins. Properties
// merges in reverse insertion order so that the same plugin wins there too.
func (c *Convention) AsDelegate() apis.Delegate {
	return view{c: c}
}

type view struct {
	c *Convention
}

var _ apis.Delegate = view{}

func (v view) each(fn func(d apis.Delegate) bool) {
	for p := v.c.plugins.Oldest(); p != nil; p = p.Next() {
		if p.Value == nil {
			continue
		}
		if fn(v.c.delegateFor(p.Value)) {
			return
		}
	}
}

func (v view) DisplayName() string { return DisplayName }

func (v view) HasProperty(name string) bool {
	found := false
	v.each(func(d apis.Delegate) bool {
		found = d.HasProperty(name)
		return found
	})
	return found
}

func (v view) TryGet(name string) (any, bool) {
	var (
		val   any
		found bool
	)
	v.each(func(d apis.Delegate) bool {
		val, found = d.TryGet(name)
		return found
	})
	return val, found
}

func (v view) TrySet(name string, value any) (bool, error) {
	var (
		found bool
		err   error
	)
	v.each(func(d apis.Delegate) bool {
		found, err = d.TrySet(name, value)
		return found || err != nil
	})
	return found, err
}

func (v view) Properties() map[string]any {
	out := make(map[string]any)
	for p := v.c.plugins.Newest(); p != nil; p = p.Prev() {
		if p.Value == nil {
			continue
		}
		for k, val := range v.c.delegateFor(p.Value).Properties() {
			out[k] = val
		}
	}
	return out
}

func (v view) HasMethod(name string, args ...any) bool {
	found := false
	v.each(func(d apis.Delegate) bool {
		found = d.HasMethod(name, args...)
		return found
	})
	return found
}

func (v view) TryInvoke(name string, args ...any) (any, bool, error) {
	var (
		res   any
		found bool
		err   error
	)
	v.each(func(d apis.Delegate) bool {
		res, found, err = d.TryInvoke(name, args...)
		return found || err != nil
	})
	return res, found, err
}
